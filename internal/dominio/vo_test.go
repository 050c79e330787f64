package dominio_test

import (
	"testing"

	"servico-processos/internal/dominio"
)

func TestCpfCnpj(t *testing.T) {
	t.Run("deve normalizar CPF formatado", func(t *testing.T) {
		cpf, err := dominio.NovoCpfCnpj("123.456.789-09")

		if err != nil {
			t.Fatalf("esperava nil, obteve erro: %v", err)
		}

		if cpf != "12345678909" {
			t.Errorf("esperava 12345678909, obteve: %s", cpf)
		}
	})

	t.Run("deve aceitar CNPJ com 14 dígitos", func(t *testing.T) {
		cnpj, err := dominio.NovoCpfCnpj("12.345.678/0001-95")

		if err != nil {
			t.Fatalf("esperava nil, obteve erro: %v", err)
		}

		if len(cnpj) != 14 {
			t.Errorf("esperava 14 dígitos, obteve: %d", len(cnpj))
		}
	})

	t.Run("deve rejeitar quantidade de dígitos inválida", func(t *testing.T) {
		_, err := dominio.NovoCpfCnpj("12345")

		if err == nil {
			t.Fatal("esperava erro, obteve nil")
		}

		verificarCampoInvalido(t, err)
	})

	t.Run("deve rejeitar entrada vazia", func(t *testing.T) {
		_, err := dominio.NovoCpfCnpj("   ")

		if err == nil {
			t.Fatal("esperava erro, obteve nil")
		}

		verificarCampoInvalido(t, err)
	})
}

func TestEmail(t *testing.T) {
	t.Run("deve guardar email em minúsculas", func(t *testing.T) {
		email, err := dominio.NovoEmail("Fulano.Silva@Example.COM")

		if err != nil {
			t.Fatalf("esperava nil, obteve erro: %v", err)
		}

		if email != "fulano.silva@example.com" {
			t.Errorf("esperava fulano.silva@example.com, obteve: %s", email)
		}
	})

	t.Run("normalização deve ser idempotente", func(t *testing.T) {
		primeiro, err := dominio.NovoEmail("Fulano@Example.com")
		if err != nil {
			t.Fatalf("esperava nil, obteve erro: %v", err)
		}

		segundo, err := dominio.NovoEmail(string(primeiro))
		if err != nil {
			t.Fatalf("esperava nil, obteve erro: %v", err)
		}

		if primeiro != segundo {
			t.Errorf("esperava %s, obteve: %s", primeiro, segundo)
		}
	})

	t.Run("deve rejeitar email sem dominio", func(t *testing.T) {
		_, err := dominio.NovoEmail("fulano@")

		if err == nil {
			t.Fatal("esperava erro, obteve nil")
		}

		verificarCampoInvalido(t, err)
	})

	t.Run("deve rejeitar email vazio", func(t *testing.T) {
		_, err := dominio.NovoEmail("")

		if err == nil {
			t.Fatal("esperava erro, obteve nil")
		}
	})

	t.Run("deve rejeitar TLD de uma letra", func(t *testing.T) {
		_, err := dominio.NovoEmail("fulano@example.c")

		if err == nil {
			t.Fatal("esperava erro, obteve nil")
		}
	})
}

func TestTelefone(t *testing.T) {
	t.Run("deve normalizar telefone fixo formatado", func(t *testing.T) {
		tel, err := dominio.NovoTelefone("(11) 3456-7890")

		if err != nil {
			t.Fatalf("esperava nil, obteve erro: %v", err)
		}

		if tel != "1134567890" {
			t.Errorf("esperava 1134567890, obteve: %s", string(tel))
		}
	})

	t.Run("deve formatar fixo com 10 dígitos", func(t *testing.T) {
		tel, err := dominio.NovoTelefone("1134567890")
		if err != nil {
			t.Fatalf("esperava nil, obteve erro: %v", err)
		}

		if tel.Formatado() != "(11) 3456-7890" {
			t.Errorf("esperava (11) 3456-7890, obteve: %s", tel.Formatado())
		}
	})

	t.Run("deve formatar celular com 11 dígitos", func(t *testing.T) {
		tel, err := dominio.NovoTelefone("11987654321")
		if err != nil {
			t.Fatalf("esperava nil, obteve erro: %v", err)
		}

		if tel.Formatado() != "(11) 98765-4321" {
			t.Errorf("esperava (11) 98765-4321, obteve: %s", tel.Formatado())
		}
	})

	t.Run("deve rejeitar quantidade de dígitos inválida", func(t *testing.T) {
		_, err := dominio.NovoTelefone("12345")

		if err == nil {
			t.Fatal("esperava erro, obteve nil")
		}

		verificarCampoInvalido(t, err)
	})

	t.Run("deve rejeitar telefone vazio", func(t *testing.T) {
		_, err := dominio.NovoTelefone("")

		if err == nil {
			t.Fatal("esperava erro, obteve nil")
		}
	})
}

func verificarCampoInvalido(t *testing.T, err error) {
	t.Helper()

	erroNegocio, ok := err.(*dominio.ErroNegocio)
	if !ok {
		t.Fatalf("esperava *dominio.ErroNegocio, obteve: %T", err)
	}
	if erroNegocio.Codigo != dominio.CodigoCampoInvalido {
		t.Errorf("esperava código CAMPO_INVALIDO, obteve: %s", erroNegocio.Codigo)
	}
}
