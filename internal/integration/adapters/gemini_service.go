// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/deolhonanota/backend/internal/application/adapter"
)

// GeminiService implements the PrefixSuggestionService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestPrefixes analyzes uncategorized product names and proposes prefix rules.
func (s *GeminiService) SuggestPrefixes(ctx context.Context, request *adapter.PrefixSuggestionRequest) ([]*adapter.PrefixSuggestion, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	suggestions, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return suggestions, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.PrefixSuggestionRequest) string {
	var sb strings.Builder

	sb.WriteString(`Voce e um especialista em classificacao de produtos de cupons fiscais brasileiros (NFC-e). Sua tarefa e analisar nomes de produtos que ainda nao possuem categoria e sugerir prefixos de classificacao.

COMO FUNCIONA A CLASSIFICACAO:
- Um prefixo e o inicio do nome de um produto, em MAIUSCULAS
- Um produto e classificado quando seu nome comeca com um prefixo cadastrado
- Prefixos mais longos tem prioridade sobre prefixos mais curtos
- Exemplo: o prefixo "LEITE" captura "LEITE INTEGRAL 1L" e "LEITE DESNATADO"

REGRAS IMPORTANTES:
- O prefixo deve ser especifico para evitar falsos positivos, mas geral o bastante para capturar variacoes do mesmo produto
- Use APENAS codigos de categorias da lista fornecida
- Agrupe produtos similares sob o mesmo prefixo
- Nomes de produtos de cupom fiscal sao frequentemente abreviados ("REFRIG", "BISC", "QJO"); preserve a abreviacao no prefixo

CATEGORIAS EXISTENTES:
`)

	for _, cat := range request.Categories {
		sb.WriteString(fmt.Sprintf("- Codigo: %s, Nome: %s", cat.Code, cat.Name))
		if cat.Description != "" {
			sb.WriteString(", Descricao: " + cat.Description)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nPRODUTOS SEM CATEGORIA:\n")
	for _, name := range request.ProductNames {
		sb.WriteString(fmt.Sprintf("- %s\n", name))
	}

	sb.WriteString(`
Responda com um array JSON de sugestoes. Cada sugestao deve ter:
{
  "prefix": "PREFIXO EM MAIUSCULAS",
  "category_code": "codigo de uma categoria existente",
  "product_names": ["nomes dos produtos que o prefixo captura"],
  "reasoning": "breve explicacao em Portugues"
}

FORMATO DE RESPOSTA: Retorne apenas o array JSON, sem texto adicional.
`)

	return sb.String()
}

// geminiPrefixSuggestion represents the raw response from Gemini.
type geminiPrefixSuggestion struct {
	Prefix       string   `json:"prefix"`
	CategoryCode string   `json:"category_code"`
	ProductNames []string `json:"product_names"`
	Reasoning    string   `json:"reasoning"`
}

// parseResponse parses the Gemini response into prefix suggestions.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) ([]*adapter.PrefixSuggestion, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var raw []geminiPrefixSuggestion
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	suggestions := make([]*adapter.PrefixSuggestion, 0, len(raw))
	for _, r := range raw {
		if r.Prefix == "" || r.CategoryCode == "" {
			continue
		}
		suggestions = append(suggestions, &adapter.PrefixSuggestion{
			Prefix:       strings.ToUpper(strings.TrimSpace(r.Prefix)),
			CategoryCode: r.CategoryCode,
			ProductNames: r.ProductNames,
			Reasoning:    r.Reasoning,
		})
	}

	return suggestions, nil
}
