package extract

import "regexp"

// Tabelas de configuração da extração. Palavras-chave e padrões de rótulo
// ficam nomeados aqui, fora do fluxo de controle, para que novas variantes
// de rótulo entrem sem tocar no algoritmo.
//
// As palavras-chave são comparadas contra o contexto já minusculizado e sem
// acentos (ver foldContext), portanto são declaradas sem diacríticos.

// entityKeywords indicam a parte contratante (condomínio) na vizinhança de
// um CNPJ.
var entityKeywords = []string{"condominio", "contratante", "cliente"}

// companyKeywords indicam a prestadora de serviços.
var companyKeywords = []string{"empresa", "prestadora", "contratada", "fornecedor"}

// contextRadius é o tamanho, em bytes, da janela de contexto capturada
// antes e depois de cada CNPJ para o teste de palavras-chave.
const contextRadius = 100

// nameTerminator delimita o fim de um nome capturado: quebra de linha,
// vírgula, ponto, dois ou mais espaços ou o marcador literal "CNPJ".
const nameTerminator = `(?:\r?\n|,|\.|[ \t]{2,}|\s*CNPJ|$)`

// condominioLabels padrões de rótulo para o nome do condomínio, em ordem
// de prioridade; vence o primeiro que casar.
var condominioLabels = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Condom[ií]nio\s+(.+?)` + nameTerminator),
	regexp.MustCompile(`(?i)Contratante:\s*(.+?)` + nameTerminator),
	regexp.MustCompile(`(?i)Cliente:\s*(.+?)` + nameTerminator),
}

// empresaLabels padrões de rótulo para o nome da empresa.
var empresaLabels = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Empresa|Raz[aã]o Social):\s*(.+?)` + nameTerminator),
	regexp.MustCompile(`(?i)Contratada:\s*(.+?)` + nameTerminator),
	regexp.MustCompile(`(?i)Prestadora:\s*(.+?)` + nameTerminator),
}
