package dominio_test

import (
	"testing"

	"servico-processos/internal/dominio"
)

func TestNovaPessoa(t *testing.T) {
	t.Run("deve criar pessoa com campos normalizados", func(t *testing.T) {
		pessoa, err := dominio.NovaPessoa("Fulano de Tal", "123.456.789-09", "Fulano@Example.COM", "(11) 98765-4321")

		if err != nil {
			t.Fatalf("esperava nil, obteve erro: %v", err)
		}

		if pessoa.CpfCnpj != "12345678909" {
			t.Errorf("esperava CPF normalizado, obteve: %s", pessoa.CpfCnpj)
		}
		if pessoa.Email != "fulano@example.com" {
			t.Errorf("esperava email em minúsculas, obteve: %s", pessoa.Email)
		}
		if pessoa.Telefone != "11987654321" {
			t.Errorf("esperava telefone normalizado, obteve: %s", string(pessoa.Telefone))
		}
	})

	t.Run("deve rejeitar CPF inválido sem criar pessoa", func(t *testing.T) {
		pessoa, err := dominio.NovaPessoa("Fulano de Tal", "12345", "fulano@example.com", "11987654321")

		if err == nil {
			t.Fatal("esperava erro, obteve nil")
		}
		if pessoa != nil {
			t.Error("esperava pessoa nil em caso de erro")
		}
	})

	t.Run("deve rejeitar email inválido", func(t *testing.T) {
		_, err := dominio.NovaPessoa("Fulano de Tal", "12345678909", "email-invalido", "11987654321")

		if err == nil {
			t.Fatal("esperava erro, obteve nil")
		}
	})

	t.Run("deve rejeitar telefone inválido", func(t *testing.T) {
		_, err := dominio.NovaPessoa("Fulano de Tal", "12345678909", "fulano@example.com", "99")

		if err == nil {
			t.Fatal("esperava erro, obteve nil")
		}
	})
}

func TestPessoa_Atualizar(t *testing.T) {
	t.Run("deve substituir os quatro campos", func(t *testing.T) {
		pessoa, err := dominio.NovaPessoa("Fulano de Tal", "123.456.789-09", "fulano@example.com", "11987654321")
		if err != nil {
			t.Fatalf("esperava nil, obteve erro: %v", err)
		}

		err = pessoa.Atualizar("Beltrano Souza", "12.345.678/0001-95", "Beltrano@Example.com", "(21) 3456-7890")
		if err != nil {
			t.Fatalf("esperava nil, obteve erro: %v", err)
		}

		if pessoa.NomeCompleto != "Beltrano Souza" {
			t.Errorf("esperava nome atualizado, obteve: %s", pessoa.NomeCompleto)
		}
		if pessoa.CpfCnpj != "12345678000195" {
			t.Errorf("esperava CNPJ normalizado, obteve: %s", pessoa.CpfCnpj)
		}
		if pessoa.Email != "beltrano@example.com" {
			t.Errorf("esperava email em minúsculas, obteve: %s", pessoa.Email)
		}
		if pessoa.Telefone != "2134567890" {
			t.Errorf("esperava telefone normalizado, obteve: %s", string(pessoa.Telefone))
		}
	})

	t.Run("campo inválido não deve alterar nada", func(t *testing.T) {
		pessoa, err := dominio.NovaPessoa("Fulano de Tal", "123.456.789-09", "fulano@example.com", "11987654321")
		if err != nil {
			t.Fatalf("esperava nil, obteve erro: %v", err)
		}

		err = pessoa.Atualizar("Beltrano Souza", "123", "beltrano@example.com", "2134567890")

		if err == nil {
			t.Fatal("esperava erro, obteve nil")
		}
		if pessoa.NomeCompleto != "Fulano de Tal" {
			t.Errorf("esperava nome preservado, obteve: %s", pessoa.NomeCompleto)
		}
		if pessoa.CpfCnpj != "12345678909" {
			t.Errorf("esperava CPF preservado, obteve: %s", pessoa.CpfCnpj)
		}
	})
}
