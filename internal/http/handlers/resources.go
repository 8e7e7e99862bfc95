package handlers

import (
	"ibrac/internal/pagination"
	"ibrac/internal/repositories"
)

var entriesList = listSpec{
	Resource: repositories.TableEntries,
	Filters:  map[string]string{"material": "material", "fornecedor": "fornecedor"},
	Sort: map[string]string{
		"id": "id", "data": "data", "fornecedor": "fornecedor", "material": "material",
		"pesoKg": "peso_kg", "precoKg": "preco_kg", "valorTotal": "valor_total",
	},
	Default: pagination.Order{Field: "data"},
}

var exitsList = listSpec{
	Resource: repositories.TableExits,
	Filters:  map[string]string{"material": "material", "cliente": "cliente", "notaFiscal": "nota_fiscal"},
	Sort: map[string]string{
		"id": "id", "data": "data", "cliente": "cliente", "material": "material",
		"pesoKg": "peso_kg", "precoKg": "preco_kg", "valorTotal": "valor_total",
	},
	Default: pagination.Order{Field: "data"},
}

var processingList = listSpec{
	Resource: repositories.TableProcessing,
	Filters:  map[string]string{"material": "material", "beneficiador": "beneficiador", "status": "status"},
	Sort: map[string]string{
		"id": "id", "dataEnvio": "data_envio", "dataRetorno": "data_retorno", "beneficiador": "beneficiador",
		"material": "material", "pesoEnviadoKg": "peso_enviado", "status": "status",
	},
	Default: pagination.Order{Field: "data_envio"},
}

var stockList = listSpec{
	Resource: repositories.ViewStock,
	Filters:  map[string]string{"material": "material"},
	Sort:     map[string]string{"material": "material", "saldoKg": "saldo_kg"},
	Default:  pagination.Order{Field: "material", Ascending: true},
}

var usersList = listSpec{
	Resource: repositories.TableUsers,
	Columns:  "id, nome, email, role, ativo, created_at",
	Filters:  map[string]string{"role": "role"},
	Sort:     map[string]string{"id": "id", "nome": "nome", "email": "email"},
	Default:  pagination.Order{Field: "nome", Ascending: true},
}
