package player

var botNames = []string{
	"Connor", "Markus", "Kara",
	"Hank", "Mat", "John",
	"Evelyn", "Emily", "Mike",
}

// BotNames returns a copy of the default pool; a session draws from it without replacement.
func BotNames() []string {
	names := make([]string, len(botNames))
	copy(names, botNames)
	return names
}
