package contact

import (
	"bytes"
	"fmt"

	"github.com/emersion/go-vcard"
)

// EncodeContact serializes c as a vCard 3.0 record with one FN, one EMAIL and
// one TEL property. A URL property is added only when c.URL is set.
// Values are not validated.
func EncodeContact(c Info) ([]byte, error) {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, "3.0")
	card.SetValue(vcard.FieldFormattedName, c.Name)
	card.SetValue(vcard.FieldEmail, c.Email)
	card.SetValue(vcard.FieldTelephone, c.Phone)
	if c.URL != "" {
		card.SetValue(vcard.FieldURL, c.URL)
	}

	var buf bytes.Buffer
	if err := vcard.NewEncoder(&buf).Encode(card); err != nil {
		return nil, fmt.Errorf("encode vcard: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeContact parses the first vCard in b.
func DecodeContact(b []byte) (Info, error) {
	card, err := vcard.NewDecoder(bytes.NewReader(b)).Decode()
	if err != nil {
		return Info{}, fmt.Errorf("decode vcard: %w", err)
	}
	return Info{
		Name:  card.Value(vcard.FieldFormattedName),
		Email: card.Value(vcard.FieldEmail),
		Phone: card.Value(vcard.FieldTelephone),
		URL:   card.Value(vcard.FieldURL),
	}, nil
}
