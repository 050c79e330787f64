package dominio_test

import (
	"testing"

	"servico-processos/internal/dominio"
)

func TestNovaAcao(t *testing.T) {
	t.Run("deve criar ação com data de registro", func(t *testing.T) {
		acao, err := dominio.NovaAcao(dominio.TipoAcaoPeticao, "petição inicial")

		if err != nil {
			t.Fatalf("esperava nil, obteve erro: %v", err)
		}

		if acao.DataRegistro.IsZero() {
			t.Error("esperava DataRegistro preenchida")
		}
	})

	t.Run("deve rejeitar tipo desconhecido", func(t *testing.T) {
		_, err := dominio.NovaAcao("RECURSO", "d")

		if err == nil {
			t.Fatal("esperava erro, obteve nil")
		}

		verificarCampoInvalido(t, err)
	})
}

func TestNovaParteEnvolvida(t *testing.T) {
	t.Run("deve vincular pessoa pelo id", func(t *testing.T) {
		pessoa, err := dominio.NovaPessoa("Fulano de Tal", "12345678909", "fulano@example.com", "11987654321")
		if err != nil {
			t.Fatalf("esperava nil, obteve erro: %v", err)
		}

		parte, err := dominio.NovaParteEnvolvida(*pessoa, dominio.TipoParteAutor)
		if err != nil {
			t.Fatalf("esperava nil, obteve erro: %v", err)
		}

		if parte.PessoaID != pessoa.ID {
			t.Error("esperava PessoaID vinculado")
		}
	})

	t.Run("deve rejeitar papel desconhecido", func(t *testing.T) {
		pessoa, err := dominio.NovaPessoa("Fulano de Tal", "12345678909", "fulano@example.com", "11987654321")
		if err != nil {
			t.Fatalf("esperava nil, obteve erro: %v", err)
		}

		_, err = dominio.NovaParteEnvolvida(*pessoa, "TESTEMUNHA")

		if err == nil {
			t.Fatal("esperava erro, obteve nil")
		}

		verificarCampoInvalido(t, err)
	})
}
