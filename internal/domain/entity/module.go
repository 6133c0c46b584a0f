package entity

// Module identifica um módulo de negócio sujeito a controle de permissão.
// Os códigos são estáveis e persistidos nas linhas de permissão: renomeá-los
// quebra dados gravados.
type Module string

// Módulos do sistema (enumeração fechada).
const (
	ModuleOperacional    Module = "operacional"     // capacidade produtiva
	ModuleEstoqueEntrada Module = "estoque_entrada" // entrada de produtos
	ModuleEstoqueSaida   Module = "estoque_saida"   // saída/venda de produtos
	ModuleFinanceiro     Module = "financeiro"      // custos e lucros
	ModuleRH             Module = "rh"              // folha de pagamento
)

// AllModules devolve a enumeração completa, na ordem dos menus do sistema.
func AllModules() []Module {
	return []Module{
		ModuleOperacional,
		ModuleEstoqueEntrada,
		ModuleEstoqueSaida,
		ModuleFinanceiro,
		ModuleRH,
	}
}

// ParseModule valida um código de módulo vindo de fora (API, CLI, banco).
func ParseModule(code string) (Module, bool) {
	m := Module(code)
	for _, known := range AllModules() {
		if m == known {
			return m, true
		}
	}
	return "", false
}

// String devolve o código persistível do módulo.
func (m Module) String() string { return string(m) }

// Permission representa a concessão de um módulo a um usuário.
// Semântica de conjunto: conceder duas vezes equivale a conceder uma.
type Permission struct {
	UserID int64
	Module Module
}
