package phone

import "strings"

// Normalize приводит номер телефона к виду +<цифры>.
// Пробелы, скобки и дефисы отбрасываются, ведущая восьмерка
// заменяется на +7. Возвращает false для номеров, которые
// не удается привести к 10-15 значащим цифрам.
func Normalize(raw string) (string, bool) {
	var digits strings.Builder
	plus := false

	for i, ch := range raw {
		switch {
		case ch >= '0' && ch <= '9':
			digits.WriteRune(ch)
		case ch == '+' && i == 0:
			plus = true
		case ch == ' ' || ch == '-' || ch == '(' || ch == ')':
			// Разделители игнорируем
		default:
			return "", false
		}
	}

	number := digits.String()

	// Локальная запись через восьмерку
	if !plus && len(number) == 11 && number[0] == '8' {
		number = "7" + number[1:]
	}

	if len(number) < 10 || len(number) > 15 {
		return "", false
	}

	return "+" + number, true
}

// Valid сообщает, является ли строка корректным номером телефона
func Valid(raw string) bool {
	_, ok := Normalize(raw)
	return ok
}
