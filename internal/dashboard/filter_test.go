package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFilter_Unrestricted(t *testing.T) {
	f := NewFilter()

	assert.Equal(t, AllCompanies, f.Company)
	assert.Empty(t, f.Months)
	assert.Empty(t, f.Categories)
	assert.True(t, f.MatchesCompany("Qualquer"))
	assert.True(t, f.MatchesMonth("Janeiro"))
	assert.True(t, f.MatchesCategory("Marketing"))
}

func TestFilter_MatchesCompany(t *testing.T) {
	f := Filter{Company: "Empresa A"}

	assert.True(t, f.MatchesCompany("Empresa A"))
	assert.False(t, f.MatchesCompany("Empresa B"))
}

func TestFilter_MatchesMonth(t *testing.T) {
	f := Filter{Months: []string{"Janeiro", "Março"}}

	assert.True(t, f.MatchesMonth("Janeiro"))
	assert.False(t, f.MatchesMonth("Fevereiro"))
}

func TestFilter_MatchesCategory(t *testing.T) {
	f := Filter{Categories: []string{"Marketing"}}

	assert.True(t, f.MatchesCategory("Marketing"))
	assert.False(t, f.MatchesCategory("Pessoal"))
}

func TestFilter_NonexistentSelectionYieldsNothing(t *testing.T) {
	f := Filter{Company: "Empresa Z", Months: []string{"Mes Treze"}}

	assert.False(t, f.MatchesCompany("Empresa A"))
	assert.False(t, f.MatchesMonth("Janeiro"))
}
