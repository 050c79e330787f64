package dominio

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	naoDigitos = regexp.MustCompile(`\D`)
	emailRegex = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.[A-Za-z]{2,}$`)
)

// CpfCnpj guarda apenas os dígitos: 11 (CPF) ou 14 (CNPJ).
type CpfCnpj string

func NovoCpfCnpj(valor string) (CpfCnpj, error) {
	if strings.TrimSpace(valor) == "" {
		return "", novoErroCampoInvalido("CPF/CNPJ não pode ser nulo ou vazio.")
	}

	digitos := naoDigitos.ReplaceAllString(valor, "")

	if len(digitos) != 11 && len(digitos) != 14 {
		return "", novoErroCampoInvalido("CPF/CNPJ inválido: deve ter 11 ou 14 dígitos.")
	}

	return CpfCnpj(digitos), nil
}

func (c CpfCnpj) String() string {
	return string(c)
}

// Email guarda o endereço sempre em minúsculas.
type Email string

func NovoEmail(valor string) (Email, error) {
	if valor == "" {
		return "", novoErroCampoInvalido("Email não pode ser nulo.")
	}
	if !emailRegex.MatchString(valor) {
		return "", novoErroCampoInvalido("Email inválido.")
	}
	return Email(strings.ToLower(valor)), nil
}

func (e Email) String() string {
	return string(e)
}

// Telefone guarda apenas os dígitos: 10 (fixo) ou 11 (celular).
type Telefone string

func NovoTelefone(numero string) (Telefone, error) {
	if numero == "" {
		return "", novoErroCampoInvalido("Telefone não pode ser nulo.")
	}

	digitos := naoDigitos.ReplaceAllString(numero, "")

	if len(digitos) != 10 && len(digitos) != 11 {
		return "", novoErroCampoInvalido("Telefone inválido.")
	}

	return Telefone(digitos), nil
}

// Formatado renderiza (DD) DDDD-DDDD para fixo e (DD) DDDDD-DDDD para celular.
func (t Telefone) Formatado() string {
	switch len(t) {
	case 10:
		return fmt.Sprintf("(%s) %s-%s", t[0:2], t[2:6], t[6:])
	case 11:
		return fmt.Sprintf("(%s) %s-%s", t[0:2], t[2:7], t[7:])
	default:
		return string(t)
	}
}

func (t Telefone) String() string {
	return t.Formatado()
}
