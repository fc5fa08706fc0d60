package virtusim

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// decodeBody разбирает тело как один JSON-документ. Числа остаются
// json.Number, чтобы идентификаторы заказов не превращались во float.
func decodeBody(raw []byte) (any, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return wrapText(raw), false
	}
	// хвост после документа означает, что это не JSON
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return wrapText(raw), false
	}
	return doc, true
}

// wrapText: не-JSON ответ отдаётся клиенту как {"response": "<текст>"}.
func wrapText(raw []byte) map[string]any {
	return map[string]any{"response": string(raw)}
}
