package utils

import (
	"fmt"

	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// GenerateSluggedID builds a readable identifier like "time-range-Ab3dEf9"
// from a human label plus a nanoid suffix.
func GenerateSluggedID(label string) string {
	s := slug.Make(label)
	if s == "" {
		return GenerateID()
	}
	return fmt.Sprintf("%s-%s", s, GenerateID())
}
