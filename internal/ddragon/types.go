package ddragon

// Ability is a champion spell with its cooldown table
type Ability struct {
	ID        string
	Name      string
	IconFile  string
	Cooldowns []float64
}

// championListResponse maps champion.json
type championListResponse struct {
	Version string                      `json:"version"`
	Data    map[string]championListItem `json:"data"`
}

type championListItem struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// championDetailResponse maps champion/{id}.json
type championDetailResponse struct {
	Data map[string]championDetail `json:"data"`
}

type championDetail struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Spells []spell `json:"spells"`
}

type spell struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Cooldown []float64  `json:"cooldown"`
	Image    spellImage `json:"image"`
}

type spellImage struct {
	Full string `json:"full"`
}
