package virtusim

import (
	"context"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"virtusim-backend/pkg/config"
)

// Provider - "чистый фасад" для API VirtuSIM: один эндпоинт, form-encoded POST.
type Provider struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func New(cfg config.VirtuSIMConfig, logger *zap.Logger) *Provider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultVirtuSIMURL
	}
	return &Provider{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    baseURL,
		logger:     logger.Named("virtusim_provider"),
	}
}

func (p *Provider) Name() string {
	return "virtusim"
}

// Call выполняет действие action. Ответ не-JSON возвращается как
// {"response": "<текст>"}. Повторов нет.
func (p *Provider) Call(ctx context.Context, apiKey, action string, params map[string]string) (any, error) {
	form := buildForm(apiKey, action, params)

	raw, err := p.post(ctx, form)
	if err != nil {
		p.logger.Warn("Запрос к VirtuSIM завершился ошибкой",
			zap.String("action", action),
			zap.Error(err),
		)
		return nil, err
	}

	doc, isJSON := decodeBody(raw)
	p.logger.Debug("Ответ VirtuSIM получен",
		zap.String("action", action),
		zap.Int("bytes", len(raw)),
		zap.Bool("json", isJSON),
	)
	return doc, nil
}

func buildForm(apiKey, action string, params map[string]string) url.Values {
	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}
	// api_key и action всегда наши, параметры их не перетирают
	form.Set("api_key", apiKey)
	form.Set("action", action)
	return form
}
