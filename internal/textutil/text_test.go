package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "punctuation", in: "Node.js, React & SQL!", want: "node js react sql"},
		{name: "accents kept", in: "Gestión de Proyectos; Comunicación", want: "gestión de proyectos comunicación"},
		{name: "whitespace collapsed", in: "  a\t\tb \n c  ", want: "a b c"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestTokenizeAndFilter(t *testing.T) {
	tokens := Tokenize("Lideré el equipo de backend con Go y Python en 2020")
	assert.Equal(t, []string{"Lideré", "el", "equipo", "de", "backend", "con", "Go", "y", "Python", "en", "2020"}, tokens)

	assert.Equal(t, []string{"lideré", "equipo", "backend", "python", "2020"},
		ContentTokens("Lideré el equipo de backend con Go y Python en 2020"))
}


func TestWholeWord(t *testing.T) {
	text := "java javascript java, java_ script java"

	assert.Equal(t, 3, CountWholeWord(text, "java"))
	assert.Equal(t, []int{0, 16, 35}, WholeWordIndexes(text, "java"))
	assert.Equal(t, 0, CountWholeWord(text, ""))
	assert.Equal(t, 1, CountWholeWord("diseñador gráfico", "gráfico"))
	assert.Equal(t, 0, CountWholeWord("gráficos", "gráfico"))
}

func TestWindow(t *testing.T) {
	text := "ñandú corre rápido"
	start := len("ñandú ")
	end := start + len("corre")

	assert.Equal(t, "ú corre r", Window(text, start, end, 2))
	assert.Equal(t, text, Window(text, start, end, 100))
}

func TestOrderedSet(t *testing.T) {
	var s OrderedSet
	assert.Equal(t, 2, s.Add("b", "a", "b"))
	assert.Equal(t, 1, s.Add("a", "c"))
	assert.True(t, s.Contains("c"))
	assert.False(t, s.Contains("d"))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"b", "a", "c"}, s.Items())
	assert.NotNil(t, NewOrderedSet().Items())
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("para"))
	assert.False(t, IsStopword("kubernetes"))
}
