package speech

import "context"

// DisabledClient: заглушка, когда ключей распознавания нет: голосовые
// всё равно получают ответ с пустой формой.
type DisabledClient struct{}

func (DisabledClient) Transcribe(context.Context, []byte) (string, error) {
	return "", ErrDisabled
}
