package site

import (
	"fmt"
	"strings"
)

// Lang selects the page copy.
type Lang string

const (
	Italian Lang = "it"
	English Lang = "en"
)

// ParseLang accepts "it", "en" and their long names, case-insensitively.
func ParseLang(s string) (Lang, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "it", "ita", "italiano", "italian":
		return Italian, nil
	case "en", "eng", "english", "inglese":
		return English, nil
	}
	return "", fmt.Errorf("unknown language %q", s)
}

// GalleryImage is one picture of the dining rooms gallery.
type GalleryImage struct {
	Source  string
	Alt     string
	Caption string
}

// Feature is one row of the services list.
type Feature struct {
	Num, Name, Desc string
}

// MenuCard is one course card of the menu.
type MenuCard struct {
	Label  string
	Title  string
	Dishes []string
}

// ContactItem is one block of the contact grid.
type ContactItem struct {
	Label string
	Lines []string
}

// Copy holds every string shown on the page.
type Copy struct {
	HeroKicker   string
	HeroTitle    string
	HeroSubtitle string
	HeroCTA      string

	StoriaKicker  string
	StoriaTitle   string
	StoriaCaption string
	StoriaLead    string
	StoriaBody    string
	StoriaDetail  string
	StoriaQuote   string

	SaleKicker  string
	SaleTitle   string
	SaleCaption string
	SaleLead    string
	SaleBody    string
	Gallery     []GalleryImage
	Features    []Feature

	MenuKicker string
	MenuTitle  string
	MenuLead   string
	MenuCards  []MenuCard
	MenuNote   string

	ContattiKicker string
	ContattiTitle  string
	ContactItems   []ContactItem
	BookingTitle   string

	FooterTagline string
	FooterNav     []string
	Close         string
}

// Dish names stay in Italian in both languages.
var menuDishes = [][]string{
	{"Canederli in brodo", "Strangolapreti al burro e salvia", "Spätzle ai finferli", "Zuppa d'orzo alla trentina"},
	{"Cervo con polenta e mirtilli", "Gulasch con canederli di pane", "Costine affumicate con crauti", "Trota del torrente alle erbe alpine"},
	{"Strudel di mele fatto in casa", "Kaiserschmarren con confettura", "Torta di grano saraceno e mirtilli", "Crostata di ricotta di malga"},
}

var gallerySources = []string{
	"sala-tradizionale-stufa.webp",
	"tavolo-apparecchiato-fiori.webp",
	"terrazza-tramonto-montagne.webp",
	"terrazza-inverno-panoramica.webp",
	"terrazza-aperitivo-tramonto.webp",
}

var italian = Copy{
	HeroKicker:   "Ristorante & Rifugio · Dolomiti",
	HeroTitle:    "Baita Paradiso",
	HeroSubtitle: "Sapori autentici nel cuore delle Dolomiti",
	HeroCTA:      "Prenota un tavolo",

	StoriaKicker:  "La Nostra Storia",
	StoriaTitle:   "Una baita tra le vette dove il tempo si ferma",
	StoriaCaption: "Ai piedi delle Dolomiti",
	StoriaLead:    "Un luogo dove la tradizione montanara si fonde con l'ospitalità più autentica.",
	StoriaBody: "Baita Paradiso nasce dalla passione per la montagna e la cucina tipica. " +
		"Tra le vette delle Dolomiti, offriamo un'esperienza unica: piatti della tradizione " +
		"preparati con ingredienti locali, serviti in un ambiente caldo e accogliente " +
		"con vista mozzafiato sulle cime.",
	StoriaDetail: "Dettagli d'inverno: il fascino della neve sulle Dolomiti.",
	StoriaQuote:  "Il paradiso non è un luogo lontano,\nè qui, tra le montagne",

	SaleKicker:  "Sala & Terrazza",
	SaleTitle:   "Legno antico, vista infinita sulle Dolomiti",
	SaleCaption: "Calore Alpino",
	SaleLead:    "Ambienti unici dove ogni dettaglio racconta la montagna.",
	SaleBody: "Due sale dal carattere distinto: la sala superiore con le grandi vetrate " +
		"panoramiche e le travi a vista, e la sala inferiore con la tradizionale " +
		"stufa in maiolica e il calore del legno antico. All'esterno, la grande " +
		"terrazza con vista a 360 gradi sulle Dolomiti.",
	Gallery: []GalleryImage{
		{Alt: "Sala tradizionale con stufa", Caption: "Tradizione Alpina"},
		{Alt: "Tavolo apparecchiato", Caption: "Cura del Dettaglio"},
		{Alt: "Terrazza al tramonto", Caption: "Tramonto in Quota"},
		{Alt: "Terrazza invernale panoramica", Caption: "Vista Dolomiti"},
		{Alt: "Aperitivo sulla terrazza", Caption: "Atmosfera Conviviale"},
	},
	Features: []Feature{
		{"01", "Terrazza Panoramica", "Vista 360° sulle Dolomiti"},
		{"02", "Sala Tradizionale", "Stufa in maiolica e legno antico"},
		{"03", "Sala Panoramica", "Grandi vetrate e travi a vista"},
		{"04", "Pet Friendly", "Animali ammessi"},
	},

	MenuKicker: "I Nostri Piatti",
	MenuTitle:  "Sapori della tradizione alpina",
	MenuLead:   "Cucina tipica di montagna con ingredienti locali e stagionali.",
	MenuCards: []MenuCard{
		{Label: "Primi Piatti", Title: "Tradizione"},
		{Label: "Secondi Piatti", Title: "Montagna"},
		{Label: "Dolci", Title: "Dolcezze"},
	},
	MenuNote: "Il menu varia in base alla stagionalità degli ingredienti",

	ContattiKicker: "Contatti & Prenotazioni",
	ContattiTitle:  "Vieni a trovarci nel cuore delle Dolomiti",
	ContactItems: []ContactItem{
		{Label: "Dove Siamo", Lines: []string{"Dolomiti", "Trentino Alto Adige"}},
		{Label: "Orari", Lines: []string{"Pranzo 12:00 — 14:30", "Cena 19:00 — 22:00", "Aperto tutti i giorni in stagione"}},
		{Label: "Email", Lines: []string{"info@baitaparadiso.it"}},
	},
	BookingTitle: "Prenotazioni",

	FooterTagline: "Ristorante e rifugio nel cuore delle Dolomiti. Sapori autentici e vista mozzafiato.",
	FooterNav:     []string{"La Baita", "Ambienti", "Menu", "Contatti"},
	Close:         "Chiudi",
}

var english = Copy{
	HeroKicker:   "Restaurant & Mountain Hut · Dolomites",
	HeroTitle:    "Baita Paradiso",
	HeroSubtitle: "Authentic flavours in the heart of the Dolomites",
	HeroCTA:      "Book a table",

	StoriaKicker:  "Our Story",
	StoriaTitle:   "A hut among the peaks where time stands still",
	StoriaCaption: "At the foot of the Dolomites",
	StoriaLead:    "A place where mountain tradition meets the most genuine hospitality.",
	StoriaBody: "Baita Paradiso was born from a love of the mountains and their cooking. " +
		"Among the peaks of the Dolomites we offer something unique: traditional dishes " +
		"made with local ingredients, served in a warm and welcoming room " +
		"with a breathtaking view of the summits.",
	StoriaDetail: "Winter details: the charm of snow on the Dolomites.",
	StoriaQuote:  "Paradise is not a faraway place,\nit is here, among the mountains",

	SaleKicker:  "Dining Room & Terrace",
	SaleTitle:   "Old timber, endless views of the Dolomites",
	SaleCaption: "Alpine Warmth",
	SaleLead:    "Unique rooms where every detail tells of the mountains.",
	SaleBody: "Two rooms with their own character: the upper room with large panoramic " +
		"windows and exposed beams, and the lower room with its traditional " +
		"majolica stove and the warmth of old wood. Outside, the large " +
		"terrace with a 360 degree view of the Dolomites.",
	Gallery: []GalleryImage{
		{Alt: "Traditional room with stove", Caption: "Alpine Tradition"},
		{Alt: "Laid table", Caption: "Attention to Detail"},
		{Alt: "Terrace at sunset", Caption: "Sunset at Altitude"},
		{Alt: "Panoramic winter terrace", Caption: "Dolomites View"},
		{Alt: "Aperitivo on the terrace", Caption: "Convivial Atmosphere"},
	},
	Features: []Feature{
		{"01", "Panoramic Terrace", "360° view of the Dolomites"},
		{"02", "Traditional Room", "Majolica stove and old wood"},
		{"03", "Panoramic Room", "Large windows and exposed beams"},
		{"04", "Pet Friendly", "Pets welcome"},
	},

	MenuKicker: "Our Dishes",
	MenuTitle:  "Flavours of the alpine tradition",
	MenuLead:   "Typical mountain cooking with local, seasonal ingredients.",
	MenuCards: []MenuCard{
		{Label: "First Courses", Title: "Tradition"},
		{Label: "Main Courses", Title: "Mountain"},
		{Label: "Desserts", Title: "Sweets"},
	},
	MenuNote: "The menu changes with the seasons",

	ContattiKicker: "Contact & Booking",
	ContattiTitle:  "Come and find us in the heart of the Dolomites",
	ContactItems: []ContactItem{
		{Label: "Where We Are", Lines: []string{"Dolomites", "Trentino Alto Adige"}},
		{Label: "Opening Hours", Lines: []string{"Lunch 12:00 — 14:30", "Dinner 19:00 — 22:00", "Open every day in season"}},
		{Label: "Email", Lines: []string{"info@baitaparadiso.it"}},
	},
	BookingTitle: "Bookings",

	FooterTagline: "Restaurant and mountain hut in the heart of the Dolomites. Authentic flavours and breathtaking views.",
	FooterNav:     []string{"The Hut", "Rooms", "Menu", "Contact"},
	Close:         "Close",
}

// CopyFor returns the copy for lang. Unknown languages get Italian.
func CopyFor(lang Lang) Copy {
	c := italian
	if lang == English {
		c = english
	}
	c.Gallery = append([]GalleryImage(nil), c.Gallery...)
	for i := range c.Gallery {
		c.Gallery[i].Source = gallerySources[i]
	}
	c.MenuCards = append([]MenuCard(nil), c.MenuCards...)
	for i := range c.MenuCards {
		c.MenuCards[i].Dishes = menuDishes[i]
	}
	return c
}
