package classify

import (
	"strings"

	"github.com/sirupsen/logrus"

	"rmoreira/findash/internal/models"
	"rmoreira/findash/internal/normalize"
)

// ClassifyBalance maps raw trial-balance rows into balance-sheet accounts.
// The balance is debits minus credits, so credit-side accounts carry a
// negative sign; totals report absolute values downstream. Rows without an
// account name or without either balance column are dropped silently.
func (c *Classifier) ClassifyBalance(rows []models.RawRow) []models.BalanceAccount {
	accounts := make([]models.BalanceAccount, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		name := normalize.FieldString(row, "Conta", "conta", "Nome da Conta", "nome_conta")
		debitsRaw, hasDebits := normalize.Field(row, "Saldo Devedor", "saldo_devedor", "Débitos", "debitos")
		creditsRaw, hasCredits := normalize.Field(row, "Saldo Credor", "saldo_credor", "Créditos", "creditos")
		if name == "" || (!hasDebits && !hasCredits) {
			dropped++
			continue
		}

		code := normalize.FieldString(row, "Código", "codigo", "Conta Contábil", "conta_contabil")
		group, subgroup := resolveGroup(normalize.FieldString(row, "Grupo", "grupo"), code, name)

		debits := normalize.ParseAmount(debitsRaw)
		credits := normalize.ParseAmount(creditsRaw)

		accounts = append(accounts, models.BalanceAccount{
			AsOf:         normalize.FieldString(row, "Data", "data"),
			AccountCode:  code,
			AccountName:  name,
			Group:        group,
			Subgroup:     subgroup,
			TotalDebits:  debits,
			TotalCredits: credits,
			Balance:      debits.Sub(credits),
			Company:      normalize.FieldString(row, "Empresa", "empresa"),
		})
	}

	if dropped > 0 {
		c.log.WithFields(logrus.Fields{
			"dropped": dropped,
			"kept":    len(accounts),
		}).Debug("Dropped trial-balance rows missing account or balances")
	}
	return accounts
}

// resolveGroup derives group and subgroup from the Grupo column when present,
// else from the leading account-code digit (1 asset, 2 liability, 3 equity)
// and its second segment (1 current, 2 non-current).
func resolveGroup(grupo, code, name string) (models.BalanceGroup, models.BalanceSubgroup) {
	upper := strings.ToUpper(grupo)
	switch {
	case strings.Contains(upper, "ATIVO"):
		return models.GroupAtivo, circulanteSubgroup(upper)
	case strings.Contains(upper, "PASSIVO"):
		return models.GroupPassivo, circulanteSubgroup(upper)
	case strings.Contains(upper, "PATRIMÔNIO"), strings.Contains(upper, "PATRIMONIO"), upper == "PL":
		return models.GroupPL, equitySubgroup(name)
	}

	switch {
	case strings.HasPrefix(code, "1"):
		return models.GroupAtivo, codeSubgroup(code)
	case strings.HasPrefix(code, "2"):
		return models.GroupPassivo, codeSubgroup(code)
	case strings.HasPrefix(code, "3"):
		return models.GroupPL, equitySubgroup(name)
	}

	// Unclassifiable rows land on the asset side; the balanced-books check
	// will flag datasets where this matters.
	return models.GroupAtivo, models.SubgroupCirculante
}

func circulanteSubgroup(upperGrupo string) models.BalanceSubgroup {
	if strings.Contains(upperGrupo, "NÃO CIRCULANTE") || strings.Contains(upperGrupo, "NAO CIRCULANTE") {
		return models.SubgroupNaoCirculante
	}
	return models.SubgroupCirculante
}

func codeSubgroup(code string) models.BalanceSubgroup {
	parts := strings.Split(code, ".")
	if len(parts) >= 2 && parts[1] != "1" {
		return models.SubgroupNaoCirculante
	}
	return models.SubgroupCirculante
}

func equitySubgroup(name string) models.BalanceSubgroup {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "reserva"):
		return models.SubgroupReservas
	case strings.Contains(lower, "lucro"), strings.Contains(lower, "prejuízo"),
		strings.Contains(lower, "prejuizo"), strings.Contains(lower, "resultado"):
		return models.SubgroupResultados
	}
	return models.SubgroupCapital
}
