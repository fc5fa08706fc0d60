package virtusim

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	apperrors "virtusim-backend/pkg/errors"
)

const (
	userAgent        = "Mozilla/4.0 (compatible; MSIE 5.01; Windows NT 5.0)"
	errorBodyPreview = 512
)

func (p *Provider) post(ctx context.Context, form url.Values) ([]byte, error) {
	// Шаг 1: Собираем запрос.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: ошибка создания POST-запроса: %w", apperrors.ErrUpstreamUnexpected, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Шаг 2: Выполняем. Таймаут и отмена контекста тоже попадают сюда.
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	// Шаг 3: Проверяем статус ответа.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyPreview))
		return nil, fmt.Errorf("%w: провайдер вернул статус %s, тело ответа: %s",
			apperrors.ErrUpstreamUnavailable, resp.Status, strings.TrimSpace(string(preview)))
	}

	// Шаг 4: Читаем "сырое" тело.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: ошибка чтения ответа: %w", apperrors.ErrUpstreamUnavailable, err)
	}
	return body, nil
}
