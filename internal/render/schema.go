package render

import (
	"encoding/json"

	"awogen/internal/domain/guide"
	"awogen/internal/domain/site"
)

// Schema.org JSON-LD。没有词表校验，字段名必须和 schema.org 保持一致。

type HowToSchema struct {
	Context       string      `json:"@context"`
	Type          string      `json:"@type"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	URL           string      `json:"url"`
	DatePublished string      `json:"datePublished"`
	DateModified  string      `json:"dateModified"`
	Steps         []HowToStep `json:"step"`
}

type HowToStep struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	Text string `json:"text"`
}

func BuildHowToSchema(lg guide.LocalizedGuide, siteURL, slug, lang, published string) (string, error) {
	name := lg.Title + " Watch Order Guide"
	if lang == site.LangFR {
		name = lg.Title + " Guide d'Ordre de Visionnage"
	}
	schema := HowToSchema{
		Context:       "https://schema.org",
		Type:          "HowTo",
		Name:          name,
		Description:   lg.MetaDescription,
		URL:           site.GuideURL(siteURL, lang, slug),
		DatePublished: published,
		DateModified:  published,
		Steps:         make([]HowToStep, 0, len(lg.Timeline)),
	}
	for _, item := range lg.Timeline {
		schema.Steps = append(schema.Steps, HowToStep{
			Type: "HowToStep",
			Name: item.Title,
			Text: item.Notes,
		})
	}
	return marshalSchema(schema)
}

type FAQSchema struct {
	Context    string        `json:"@context"`
	Type       string        `json:"@type"`
	MainEntity []FAQQuestion `json:"mainEntity"`
}

type FAQQuestion struct {
	Type           string    `json:"@type"`
	Name           string    `json:"name"`
	AcceptedAnswer FAQAnswer `json:"acceptedAnswer"`
}

type FAQAnswer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

func BuildFAQSchema(lg guide.LocalizedGuide) (string, error) {
	schema := FAQSchema{
		Context:    "https://schema.org",
		Type:       "FAQPage",
		MainEntity: make([]FAQQuestion, 0, len(lg.FAQ)),
	}
	for _, f := range lg.FAQ {
		schema.MainEntity = append(schema.MainEntity, FAQQuestion{
			Type: "Question",
			Name: f.Question,
			AcceptedAnswer: FAQAnswer{
				Type: "Answer",
				Text: f.Answer,
			},
		})
	}
	return marshalSchema(schema)
}

func marshalSchema(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
