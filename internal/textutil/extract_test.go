package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDates(t *testing.T) {
	dates := ExtractDates("Desde Ene 2018 hasta 03/2021, luego 2022. Otra vez 2022.")

	assert.Contains(t, dates, "03/2021")
	assert.Contains(t, dates, "2018")
	assert.Contains(t, dates, "2022")
	assert.Contains(t, dates, "Ene 2018")

	seen := map[string]int{}
	for _, d := range dates {
		seen[d]++
	}
	for d, n := range seen {
		assert.Equal(t, 1, n, "duplicate %q", d)
	}
}

func TestExtractDates_None(t *testing.T) {
	assert.Empty(t, ExtractDates("sin fechas aquí"))
}

func TestExtractEmails(t *testing.T) {
	got := ExtractEmails("juan@example.com, otro: ana.b@mail.co y juan@example.com")
	assert.Equal(t, []string{"juan@example.com", "ana.b@mail.co"}, got)
}

func TestExtractPhoneNumbers(t *testing.T) {
	got := ExtractPhoneNumbers("Tel: +34 612 345 678")
	assert.Equal(t, []string{"+34 612 345 678"}, got)
}
