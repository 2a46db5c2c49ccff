package generator

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
)

// TextSource yields plausible strings for cosmetic fields.
type TextSource interface {
	Name() string
	Phrase() string
	Paragraph() string
	Token() string
}

type fakerText struct {
	faker *gofakeit.Faker
}

// NewFakerText returns a gofakeit backed TextSource. The same seed yields the
// same sequence of strings.
func NewFakerText(seed int64) TextSource {
	return &fakerText{faker: gofakeit.New(seed)}
}

func (f *fakerText) Name() string { return f.faker.Name() }

func (f *fakerText) Phrase() string { return f.faker.BS() }

func (f *fakerText) Paragraph() string {
	return fmt.Sprintf("%s %s", f.faker.Sentence(12), f.faker.Sentence(10))
}

func (f *fakerText) Token() string { return f.faker.UUID() }
