package render

import "awogen/internal/domain/site"

// 统一的文案入口：数据里的 ui 字典优先，缺了再落到内置的语言默认表。
// 加第三种语言时只需要补一行默认表 + 数据文件，模板不用动。
var defaultLabels = map[string]map[string]string{
	site.LangEN: {
		"watch_order_suffix":    "Watch Order",
		"hero_series":           "Series",
		"hero_films":            "Films",
		"hero_hours":            "Hours",
		"hero_updated":          "Updated",
		"nav_home":              "Home",
		"lang_switch":           "FR",
		"compare_verdict_label": "Our Verdict",
		"films_heading":         "Films & Movies",
		"fillers_heading":       "Filler Episodes",
		"col_film":              "Film",
		"col_year":              "Year",
		"col_canon":             "Canon?",
		"col_placement":         "Placement",
		"col_arc":               "Arc",
		"col_notes":             "Notes",
		"col_episodes":          "Episodes",
		"col_verdict":           "Verdict",
		"yes":                   "Yes",
		"no":                    "No",
		"home_title":            "AnimeWatchOrder.com — Complete Anime Watch Order Guides",
		"home_description":      "Clear, structured watch order guides for the most complex anime franchises. Dragon Ball, Naruto, One Piece, and more.",
		"home_heading":          "Anime Watch Order Guides",
		"home_subtitle":         "Clear, structured watch order guides for the most complex anime franchises.",
		"home_cta":              "View Guide",
	},
	site.LangFR: {
		"watch_order_suffix":    "Ordre de Visionnage",
		"hero_series":           "Séries",
		"hero_films":            "Films",
		"hero_hours":            "Heures",
		"hero_updated":          "Mis à jour",
		"nav_home":              "Accueil",
		"lang_switch":           "EN",
		"compare_verdict_label": "Notre Verdict",
		"films_heading":         "Films",
		"fillers_heading":       "Épisodes Fillers",
		"col_film":              "Film",
		"col_year":              "Année",
		"col_canon":             "Canon ?",
		"col_placement":         "Placement",
		"col_arc":               "Arc",
		"col_notes":             "Notes",
		"col_episodes":          "Épisodes",
		"col_verdict":           "Verdict",
		"yes":                   "Oui",
		"no":                    "Non",
		"home_title":            "AnimeWatchOrder.com — Guides d'Ordre de Visionnage Anime",
		"home_description":      "Des guides clairs et structurés pour les franchises anime les plus complexes. Dragon Ball, Naruto, One Piece et plus.",
		"home_heading":          "Guides d'Ordre de Visionnage Anime",
		"home_subtitle":         "Des guides clairs et structurés pour les franchises anime les plus complexes.",
		"home_cta":              "Voir le Guide",
	},
}

func Label(ui map[string]string, lang, key string) string {
	if v, ok := ui[key]; ok && v != "" {
		return v
	}
	if table, ok := defaultLabels[lang]; ok {
		if v, ok := table[key]; ok {
			return v
		}
	}
	if v, ok := defaultLabels[site.DefaultLang][key]; ok {
		return v
	}
	return key
}
