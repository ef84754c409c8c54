package structure

import "github.com/custodia-labs/docsift/internal/core/domain"

func elem(text string, page int, size float64, bold bool) domain.TextElement {
	return domain.TextElement{
		Text:    text,
		Page:    page,
		AvgSize: size,
		MaxSize: size,
		Bold:    bold,
	}
}

func bodyLines(n, page int) []domain.TextElement {
	out := make([]domain.TextElement, n)
	for i := range out {
		out[i] = elem("the quick brown fox jumps over the lazy dog again", page, 12, false)
	}
	return out
}
