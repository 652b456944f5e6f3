package render

import "awogen/internal/domain/guide"

// 未知分类一律降级到默认样式，绝不让一条脏数据打断整个构建

var badgeClasses = map[string]string{
	guide.TypeCanon:     "badge--canon",
	guide.TypeMixed:     "badge--mixed",
	guide.TypeFilmCanon: "badge--film-canon",
	guide.TypeNonCanon:  "badge--non-canon",
	guide.TypeFiller:    "badge--filler",
}

func BadgeClass(typeKey string) string {
	if c, ok := badgeClasses[typeKey]; ok {
		return c
	}
	return "badge--canon"
}

var verdictClasses = map[string]string{
	guide.VerdictMustWatch: "verdict--must-watch",
	guide.VerdictWatchable: "verdict--watchable",
	guide.VerdictSkip:      "verdict--skip",
}

func VerdictClass(verdict string) string {
	if c, ok := verdictClasses[verdict]; ok {
		return c
	}
	return "verdict--watchable"
}

func VerdictLabel(verdict string, ui map[string]string) string {
	switch verdict {
	case guide.VerdictMustWatch, guide.VerdictWatchable, guide.VerdictSkip:
		if label, ok := ui[verdict]; ok {
			return label
		}
	}
	return verdict
}

func TypeLabel(typeKey string, ui map[string]string) string {
	switch typeKey {
	case guide.TypeCanon, guide.TypeMixed, guide.TypeFilmCanon, guide.TypeNonCanon:
		if label, ok := ui[typeKey]; ok {
			return label
		}
	case guide.TypeFiller:
		if label, ok := ui[typeKey]; ok {
			return label
		}
		return "Filler"
	}
	return typeKey
}
