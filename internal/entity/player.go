package entity

type Player struct {
	ID   string
	Mark Mark
	Bot  bool
}

func (that *Player) IsBot() bool {
	return that.Bot
}
