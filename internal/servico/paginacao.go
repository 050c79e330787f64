package servico

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Pagina embrulha um resultado paginado no formato retornado pela API.
type Pagina[T any] struct {
	Conteudo       []T   `json:"conteudo"`
	Pagina         int   `json:"pagina"`
	Tamanho        int   `json:"tamanho"`
	TotalElementos int64 `json:"totalElementos"`
	TotalPaginas   int   `json:"totalPaginas"`
}

func paginar[T any](consulta *gorm.DB, pagina, tamanho int) (*Pagina[T], error) {
	if pagina < 0 {
		pagina = 0
	}
	if tamanho <= 0 {
		tamanho = 10
	}

	var total int64
	if err := consulta.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	conteudo := []T{}
	if err := consulta.Offset(pagina * tamanho).Limit(tamanho).Find(&conteudo).Error; err != nil {
		return nil, err
	}

	totalPaginas := int((total + int64(tamanho) - 1) / int64(tamanho))

	return &Pagina[T]{
		Conteudo:       conteudo,
		Pagina:         pagina,
		Tamanho:        tamanho,
		TotalElementos: total,
		TotalPaginas:   totalPaginas,
	}, nil
}

// ordenar aplica a ordenação pedida via query string; coluna passa pelo
// quoting do gorm, nunca interpolada direto no SQL.
func ordenar(consulta *gorm.DB, ordenarPor, direcao string) *gorm.DB {
	if ordenarPor == "" {
		return consulta
	}
	return consulta.Order(clause.OrderByColumn{
		Column: clause.Column{Name: ordenarPor},
		Desc:   strings.EqualFold(direcao, "desc"),
	})
}
