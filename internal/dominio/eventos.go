package dominio

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Eventos publicados pelo serviço (routing keys no exchange de processos).
const (
	EventoProcessoCriado    = "Processos.ProcessoCriado"
	EventoProcessoAtivado   = "Processos.ProcessoAtivado"
	EventoProcessoSuspenso  = "Processos.ProcessoSuspenso"
	EventoProcessoArquivado = "Processos.ProcessoArquivado"
)

// EventoOutbox é gravado na mesma transação da mudança de estado e publicado
// depois pelo publicador em background (padrão outbox).
type EventoOutbox struct {
	ID             int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	TipoEvento     string     `gorm:"not null" json:"tipoEvento"`
	IdAgregado     uuid.UUID  `gorm:"type:uuid;not null" json:"idAgregado"`
	Payload        string     `gorm:"type:jsonb;not null" json:"payload"`
	DataOcorrencia time.Time  `gorm:"not null" json:"dataOcorrencia"`
	DataPublicacao *time.Time `json:"dataPublicacao,omitempty"`
}

func (EventoOutbox) TableName() string {
	return "eventos_outbox"
}

// NovoEventoProcesso monta o evento de outbox para uma mudança de estado.
func NovoEventoProcesso(tipoEvento string, processo *Processo) (EventoOutbox, error) {
	payload, err := json.Marshal(map[string]string{
		"processoId": processo.ID.String(),
		"numero":     processo.Numero,
		"status":     string(processo.StatusProcesso),
	})
	if err != nil {
		return EventoOutbox{}, err
	}

	return EventoOutbox{
		TipoEvento:     tipoEvento,
		IdAgregado:     processo.ID,
		Payload:        string(payload),
		DataOcorrencia: time.Now(),
	}, nil
}
