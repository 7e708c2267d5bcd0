package entities

import "time"

// OSStatus represents the lifecycle of a repair ticket (ordem de serviço).
//
// Only the transition into Entregue/Pago posts a financial entry; repair
// tickets have no inventory linkage.

type OSStatus string

const (
	OSStatusRecebido           OSStatus = "Recebido"
	OSStatusDiagnostico        OSStatus = "Diagnóstico"
	OSStatusAguardandoPeca     OSStatus = "Aguardando Peça"
	OSStatusEmReparacao        OSStatus = "Em Reparação"
	OSStatusAguardandoCliente  OSStatus = "Aguardando Cliente"
	OSStatusEntreguePago       OSStatus = "Entregue/Pago"
	OSStatusCancelado          OSStatus = "Cancelado"
)

var OSStatuses = []OSStatus{
	OSStatusRecebido,
	OSStatusDiagnostico,
	OSStatusAguardandoPeca,
	OSStatusEmReparacao,
	OSStatusAguardandoCliente,
	OSStatusEntreguePago,
	OSStatusCancelado,
}

func (s OSStatus) Valid() bool {
	for _, v := range OSStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// OrdemServico is the repair ticket persisted in DynamoDB.
//
// Storage model:
//   - PK: empresa_id (tenant), SK: id
type OrdemServico struct {
	ID               string    `json:"id"`
	EmpresaID        string    `json:"empresa_id"`
	ClienteID        string    `json:"cliente_id,omitempty"`
	ClienteNome      string    `json:"cliente_nome"`
	Equipamento      string    `json:"equipamento"`
	ProblemaRelatado string    `json:"problema_relatado"`
	ValorEstimado    float64   `json:"valor_estimado"`
	ValorFinal       float64   `json:"valor_final"`
	Status           OSStatus  `json:"status"`
	DataRecebimento  time.Time `json:"data_recebimento"`
	DataEntrega      time.Time `json:"data_entrega"`
}

func (o OrdemServico) Finalized() bool {
	return o.ValorFinal > 0
}
