package ingest

import (
	"strings"

	"rmoreira/findash/internal/classify"
	"rmoreira/findash/internal/models"
	"rmoreira/findash/internal/normalize"
)

// dreMonthlyRow maps one line of the monthly income-statement CSV template.
type dreMonthlyRow struct {
	Regime          string `csv:"regime"`
	Ano             string `csv:"ano"`
	Empresa         string `csv:"empresa"`
	Descricao       string `csv:"descricao"`
	Projetado       string `csv:"projetado"`
	Real            string `csv:"real"`
	Variacao        string `csv:"variacao"`
	AnaliseVertical string `csv:"analise_vertical"`
}

// dreAccumulatedRow maps one line of the accumulated income-statement CSV
// template: one column per month plus the annual total.
type dreAccumulatedRow struct {
	Regime          string `csv:"regime"`
	Ano             string `csv:"ano"`
	Empresa         string `csv:"empresa"`
	Descricao       string `csv:"descricao"`
	Jan             string `csv:"jan"`
	Fev             string `csv:"fev"`
	Mar             string `csv:"mar"`
	Abr             string `csv:"abr"`
	Mai             string `csv:"mai"`
	Jun             string `csv:"jun"`
	Jul             string `csv:"jul"`
	Ago             string `csv:"ago"`
	Set             string `csv:"set"`
	Out             string `csv:"out"`
	Nov             string `csv:"nov"`
	Dez             string `csv:"dez"`
	Total           string `csv:"total"`
	AnaliseVertical string `csv:"analise_vertical"`
}

// ReadDREMonthly reads the monthly income-statement template. Lines without
// a description are dropped, matching the spreadsheet import.
func ReadDREMonthly(path string) ([]models.DREMonthlyLine, error) {
	rows, err := readTemplate[dreMonthlyRow](path)
	if err != nil {
		return nil, err
	}

	lines := make([]models.DREMonthlyLine, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.Descricao) == "" {
			continue
		}
		lines = append(lines, models.DREMonthlyLine{
			Regime:           classify.ParseDRERegime(row.Regime),
			Year:             normalize.ParseYear(row.Ano, 0),
			Company:          strings.TrimSpace(row.Empresa),
			Line:             classify.ParseDRELine(row.Descricao),
			Projected:        normalize.ParseAmount(row.Projetado),
			Real:             normalize.ParseAmount(row.Real),
			Variation:        strings.TrimSpace(row.Variacao),
			VerticalAnalysis: strings.TrimSpace(row.AnaliseVertical),
		})
	}
	log.WithField("count", len(lines)).Info("Read monthly income-statement lines")
	return lines, nil
}

// ReadDREAccumulated reads the accumulated income-statement template.
func ReadDREAccumulated(path string) ([]models.DREAccumulatedLine, error) {
	rows, err := readTemplate[dreAccumulatedRow](path)
	if err != nil {
		return nil, err
	}

	lines := make([]models.DREAccumulatedLine, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.Descricao) == "" {
			continue
		}
		line := models.DREAccumulatedLine{
			Regime:           classify.ParseDRERegime(row.Regime),
			Year:             normalize.ParseYear(row.Ano, 0),
			Company:          strings.TrimSpace(row.Empresa),
			Line:             classify.ParseDRELine(row.Descricao),
			Total:            normalize.ParseAmount(row.Total),
			VerticalAnalysis: strings.TrimSpace(row.AnaliseVertical),
		}
		cells := []string{
			row.Jan, row.Fev, row.Mar, row.Abr, row.Mai, row.Jun,
			row.Jul, row.Ago, row.Set, row.Out, row.Nov, row.Dez,
		}
		for i, cell := range cells {
			line.Months[i] = normalize.ParseAmount(cell)
		}
		lines = append(lines, line)
	}
	log.WithField("count", len(lines)).Info("Read accumulated income-statement lines")
	return lines, nil
}
