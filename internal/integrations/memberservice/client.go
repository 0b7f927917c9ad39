package memberservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с MemberService (справочник клиентов студии)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента MemberService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetMember получает профиль клиента по ID
func (c *Client) GetMember(ctx context.Context, memberID int64) (*Member, error) {
	url := fmt.Sprintf("%s/internal/members/%d", c.baseURL, memberID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid member ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrMemberNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var member Member
	if err := json.NewDecoder(resp.Body).Decode(&member); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &member, nil
}

// GetMemberWithGracefulDegradation получает профиль клиента с graceful degradation
// При недоступности MemberService возвращает ErrServiceDegraded -
// доска расписания в этом случае показывается без имён клиентов
func (c *Client) GetMemberWithGracefulDegradation(ctx context.Context, memberID int64) (*Member, error) {
	member, err := c.GetMember(ctx, memberID)
	if err != nil {
		// Отсутствие клиента - бизнес-ошибка, пробрасываем её дальше
		if err == ErrMemberNotFound {
			c.log.Info("Member id=%d not found", memberID)
			return nil, err
		}

		// Для остальных ошибок (недоступность, timeout, ошибки парсинга)
		// применяем graceful degradation
		c.log.Error("MemberService unavailable, applying graceful degradation for member_id=%d: %v", memberID, err)
		return nil, fmt.Errorf("%w: member_id=%d, error=%v", ErrServiceDegraded, memberID, err)
	}

	return member, nil
}
