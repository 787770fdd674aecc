package accounts

import "github.com/cleared-dev/seedgen/internal/model"

// SampleExpenses returns a small expense chart used to bootstrap a new project.
func SampleExpenses() []model.Account {
	return []model.Account{
		{ID: "6.3.1", Code: "6.3.1", Group: "Despesas Correntes", Type: model.AccountTypeSynthetic, Name: "Pessoal e Encargos"},
		{ID: "6.3.1.1.01", Code: "6.3.1.1.01", Group: "Despesas Correntes", Subgroup: "Pessoal e Encargos", Type: model.AccountTypeAnalytic, Name: "Vencimentos e Salários"},
		{ID: "6.3.1.1.02", Code: "6.3.1.1.02", Group: "Despesas Correntes", Subgroup: "Pessoal e Encargos", Type: model.AccountTypeAnalytic, Name: "Obrigações Patronais"},
		{ID: "6.3.2", Code: "6.3.2", Group: "Despesas Correntes", Type: model.AccountTypeSynthetic, Name: "Uso de Bens e Serviços"},
		{ID: "6.3.2.1.01", Code: "6.3.2.1.01", Group: "Despesas Correntes", Subgroup: "Uso de Bens e Serviços", Type: model.AccountTypeAnalytic, Name: "Material de Consumo"},
		{ID: "6.3.2.1.02", Code: "6.3.2.1.02", Group: "Despesas Correntes", Subgroup: "Uso de Bens e Serviços", Type: model.AccountTypeAnalytic, Name: "Diárias"},
		{ID: "6.3.2.1.03", Code: "6.3.2.1.03", Group: "Despesas Correntes", Subgroup: "Uso de Bens e Serviços", Type: model.AccountTypeAnalytic, Name: "Passagens e Despesas com Locomoção"},
		{ID: "6.3.2.1.04", Code: "6.3.2.1.04", Group: "Despesas Correntes", Subgroup: "Uso de Bens e Serviços", Type: model.AccountTypeAnalytic, Name: "Serviços de Terceiros - Pessoa Jurídica"},
	}
}

// SampleRevenues returns a small revenue chart used to bootstrap a new project.
func SampleRevenues() []model.Account {
	return []model.Account{
		{ID: "5.1.1", Code: "5.1.1", Group: "Receitas Correntes", Type: model.AccountTypeSynthetic, Name: "Receitas de Contribuições"},
		{ID: "5.1.1.1.01", Code: "5.1.1.1.01", Group: "Receitas Correntes", Subgroup: "Contribuições", Type: model.AccountTypeAnalytic, Name: "Anuidades de Pessoas Físicas"},
		{ID: "5.1.1.1.02", Code: "5.1.1.1.02", Group: "Receitas Correntes", Subgroup: "Contribuições", Type: model.AccountTypeAnalytic, Name: "Anuidades de Pessoas Jurídicas"},
		{ID: "5.1.2", Code: "5.1.2", Group: "Receitas Correntes", Type: model.AccountTypeSynthetic, Name: "Receitas de Serviços"},
		{ID: "5.1.2.1.01", Code: "5.1.2.1.01", Group: "Receitas Correntes", Subgroup: "Serviços", Type: model.AccountTypeAnalytic, Name: "Taxas de Registro"},
		{ID: "5.1.3.1.01", Code: "5.1.3.1.01", Group: "Receitas Correntes", Subgroup: "Financeiras", Type: model.AccountTypeAnalytic, Name: "Receitas de Aplicações Financeiras"},
	}
}
