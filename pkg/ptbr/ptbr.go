// Package ptbr formats timestamps the way the notification and mail
// texts expect them, in Brazilian Portuguese.
package ptbr

import (
	"fmt"
	"time"
)

var months = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Month returns the lowercase pt-BR month name.
func Month(m time.Month) string {
	return months[m-1]
}

// FormatLong renders t as "dia 02 de março, às 8:40h".
func FormatLong(t time.Time) string {
	return fmt.Sprintf("dia %02d de %s, às %d:%02dh",
		t.Day(), Month(t.Month()), t.Hour(), t.Minute())
}
