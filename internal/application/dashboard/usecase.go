package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

// Janelas dos alertas, em dias.
const (
	diasAvisoLicenca = 30
	diasAvisoContas  = 7
)

// EstoqueBaixoContador conta itens com quantidade no mínimo ou abaixo.
// Satisfeito pelo caso de uso de inventário.
type EstoqueBaixoContador interface {
	ContarEstoqueBaixo() (int, error)
}

// UseCase agrega contadores para o painel. Tudo é recomputado a cada
// chamada; nenhum agregado é cacheado ou persistido.
type UseCase struct {
	dashRepo     repository.DashboardRepository
	estoqueBaixo EstoqueBaixoContador
}

// NewUseCase constrói o caso de uso.
func NewUseCase(dashRepo repository.DashboardRepository, estoqueBaixo EstoqueBaixoContador) *UseCase {
	return &UseCase{dashRepo: dashRepo, estoqueBaixo: estoqueBaixo}
}

// Estatisticas monta o resumo numérico de todos os módulos.
func (uc *UseCase) Estatisticas(ctx context.Context) (*dto.EstatisticasResponse, error) {
	chamados, err := uc.dashRepo.ContarChamados(ctx)
	if err != nil {
		return nil, err
	}
	compras, err := uc.dashRepo.ContarCompras(ctx)
	if err != nil {
		return nil, err
	}
	ativos, err := uc.dashRepo.ContarAtivosAtivos(ctx)
	if err != nil {
		return nil, err
	}
	hoje := hoje()
	licencas, err := uc.dashRepo.ContarLicencasVencendo(ctx, hoje.AddDate(0, 0, diasAvisoLicenca))
	if err != nil {
		return nil, err
	}
	itens, err := uc.dashRepo.ContarItensInventario(ctx)
	if err != nil {
		return nil, err
	}
	baixo, err := uc.estoqueBaixo.ContarEstoqueBaixo()
	if err != nil {
		return nil, err
	}
	vencidas, err := uc.dashRepo.ContarContasVencidas(ctx, hoje)
	if err != nil {
		return nil, err
	}
	vencendo, err := uc.dashRepo.ContarContasVencendo(ctx, hoje, hoje.AddDate(0, 0, diasAvisoContas))
	if err != nil {
		return nil, err
	}

	return &dto.EstatisticasResponse{
		Compras: dto.EstatisticasCompras{
			Total:       compras.Total,
			Pendentes:   compras.Pendentes,
			EmAndamento: compras.EmAndamento,
		},
		Chamados: dto.EstatisticasChamados{
			Total:       chamados.Total,
			Abertos:     chamados.Abertos,
			EmAndamento: chamados.EmAndamento,
			Criticos:    chamados.Criticos,
		},
		Ativos: dto.EstatisticasAtivos{
			Total:            ativos,
			LicencasVencendo: licencas,
		},
		Inventario: dto.EstatisticasInventario{
			TotalItens:   itens,
			EstoqueBaixo: baixo,
		},
		ContasMensais: dto.EstatisticasContas{
			Vencidas: vencidas,
			Vencendo: vencendo,
		},
	}, nil
}

// Alertas monta a lista de avisos. Cada alerta só aparece quando a contagem
// correspondente é maior que zero.
func (uc *UseCase) Alertas(ctx context.Context) ([]dto.AlertaResponse, error) {
	var alertas []dto.AlertaResponse

	hoje := hoje()

	chamados, err := uc.dashRepo.ContarChamados(ctx)
	if err != nil {
		return nil, err
	}
	if chamados.Criticos > 0 {
		alertas = append(alertas, dto.AlertaResponse{
			Tipo:     dto.AlertaCritico,
			Mensagem: fmt.Sprintf("%d chamado(s) crítico(s) aberto(s)", chamados.Criticos),
			Modulo:   "chamados",
		})
	}

	vencidas, err := uc.dashRepo.ContarContasVencidas(ctx, hoje)
	if err != nil {
		return nil, err
	}
	if vencidas > 0 {
		alertas = append(alertas, dto.AlertaResponse{
			Tipo:     dto.AlertaCritico,
			Mensagem: fmt.Sprintf("%d conta(s) vencida(s)", vencidas),
			Modulo:   "contas_mensais",
		})
	}

	vencendo, err := uc.dashRepo.ContarContasVencendo(ctx, hoje, hoje.AddDate(0, 0, diasAvisoContas))
	if err != nil {
		return nil, err
	}
	if vencendo > 0 {
		alertas = append(alertas, dto.AlertaResponse{
			Tipo:     dto.AlertaAviso,
			Mensagem: fmt.Sprintf("%d conta(s) vencendo nos próximos %d dias", vencendo, diasAvisoContas),
			Modulo:   "contas_mensais",
		})
	}

	licencas, err := uc.dashRepo.ContarLicencasVencendo(ctx, hoje.AddDate(0, 0, diasAvisoLicenca))
	if err != nil {
		return nil, err
	}
	if licencas > 0 {
		alertas = append(alertas, dto.AlertaResponse{
			Tipo:     dto.AlertaAviso,
			Mensagem: fmt.Sprintf("%d licença(s) vencendo nos próximos %d dias", licencas, diasAvisoLicenca),
			Modulo:   "ativos",
		})
	}

	baixo, err := uc.estoqueBaixo.ContarEstoqueBaixo()
	if err != nil {
		return nil, err
	}
	if baixo > 0 {
		alertas = append(alertas, dto.AlertaResponse{
			Tipo:     dto.AlertaAviso,
			Mensagem: fmt.Sprintf("%d item(ns) com estoque baixo", baixo),
			Modulo:   "inventario",
		})
	}

	return alertas, nil
}

func hoje() time.Time {
	agora := time.Now()
	return time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())
}
