package models

// ShareLinks holds the shareable link of an artwork and ready-made social intents.
type ShareLinks struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Text     string `json:"text"`
	Twitter  string `json:"twitter"`
	WhatsApp string `json:"whatsapp"`
}
