package config

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	crmTokenSecretName = "crm_api_token"
	renderPageLimit    = 100
)

var renderBaseURL = "https://api.render.com/v1"

// RenderClient lê os secret files de um serviço hospedado no Render
type RenderClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

type renderSecretFile struct {
	SecretFile struct {
		Name    string `json:"name"`
		Content string `json:"content"`
	} `json:"secretFile"`
	Cursor string `json:"cursor"`
}

func NewRenderClient(config *Config) *RenderClient {
	return &RenderClient{
		APIKey:     config.Render.APIKey,
		BaseURL:    renderBaseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// ListSecrets percorre todas as páginas e indexa o conteúdo pelo nome do arquivo
func (c *RenderClient) ListSecrets(serviceID string) (map[string]string, error) {
	secrets := make(map[string]string)

	cursor := ""
	for {
		page, err := c.secretFilesPage(serviceID, cursor)
		if err != nil {
			return nil, err
		}

		for _, item := range page {
			secrets[item.SecretFile.Name] = item.SecretFile.Content
		}

		if len(page) < renderPageLimit {
			return secrets, nil
		}
		cursor = page[len(page)-1].Cursor
	}
}

func (c *RenderClient) secretFilesPage(serviceID, cursor string) ([]renderSecretFile, error) {
	query := url.Values{"limit": {fmt.Sprint(renderPageLimit)}}
	if cursor != "" {
		query.Set("cursor", cursor)
	}

	endpoint := fmt.Sprintf("%s/services/%s/secret-files?%s", c.BaseURL, url.PathEscape(serviceID), query.Encode())
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("config: erro ao consultar o Render: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("config: Render respondeu %d: %s", resp.StatusCode, body)
	}

	var page []renderSecretFile
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, err
	}
	return page, nil
}
