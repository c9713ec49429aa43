package survey

import (
	"errors"
	"fmt"

	"survey-report/internal/dataset"
)

var ErrColumnNotFound = errors.New("column not found")

// QuestionSpec describes one report tab.
type QuestionSpec struct {
	TabLabel   string `json:"tab" yaml:"tab"`
	Match      string `json:"match" yaml:"match"`
	ChartTitle string `json:"title" yaml:"title"`
	Multiple   bool   `json:"multiple" yaml:"multiple"`
}

// DefaultQuestions is the fixed report layout, in tab order.
func DefaultQuestions() []QuestionSpec {
	return []QuestionSpec{
		{
			TabLabel:   "Frequência",
			Match:      "Com que frequência você vê animais em situação de rua na sua vizinhança?",
			ChartTitle: "Frequência de Visualização",
		},
		{
			TabLabel:   "Envolvimento",
			Match:      "Você já se envolveu em alguma ação para ajudar animais em situação de rua?",
			ChartTitle: "Envolvimento em Ações",
		},
		{
			TabLabel:   "Problemas",
			Match:      "Quais problemas você percebe com os animais em situação de rua",
			ChartTitle: "Problemas Percebidos",
			Multiple:   true,
		},
		{
			TabLabel:   "Barreiras",
			Match:      "Qual a principal barreira para você ajudar mais os animais em situação de rua",
			ChartTitle: "Principais Barreiras",
			Multiple:   true,
		},
		{
			TabLabel:   "ONGs",
			Match:      "Você conhece ONGs ou instituições próximas que resgatam animais em situação de rua",
			ChartTitle: "Conhecimento de ONGs",
		},
		{
			TabLabel:   "Interesse",
			Match:      "Se existisse uma plataforma que conecta animais em situação de rua a ONGs locais",
			ChartTitle: "Interesse na Plataforma",
		},
		{
			TabLabel:   "Acesso",
			Match:      "Qual seria a maneira mais prática para você acessar essa plataforma",
			ChartTitle: "Forma de Acesso Preferida",
		},
		{
			TabLabel:   "Confiança",
			Match:      "Quais características fariam você confiar mais na plataforma",
			ChartTitle: "Características de Confiança",
			Multiple:   true,
		},
		{
			TabLabel:   "Informações",
			Match:      "Quais informações você estaria disposto(a) a compartilhar",
			ChartTitle: "Informações Compartilhadas",
			Multiple:   true,
		},
	}
}

// Result is the aggregated answer data for one question.
type Result struct {
	Question    QuestionSpec
	Column      string
	Table       FrequencyTable
	Respondents int
}

// Aggregate resolves q against ds and counts its answers. The returned error wraps
// ErrColumnNotFound when no header matches.
func Aggregate(ds *dataset.Dataset, q QuestionSpec, delimiter string) (Result, error) {
	res := Result{Question: q}

	column, ok := ResolveColumn(ds.Headers(), q.Match)
	if !ok {
		return res, fmt.Errorf("%w: %q", ErrColumnNotFound, q.Match)
	}
	res.Column = column

	cells, _ := ds.Column(column)
	if q.Multiple {
		res.Table = Tokenize(cells, delimiter)
	} else {
		res.Table = CountValues(cells)
	}
	res.Respondents = Respondents(cells)
	return res, nil
}
