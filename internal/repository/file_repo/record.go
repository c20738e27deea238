package file_repo

import (
	"time"

	"lion_slot/internal/model"

	"github.com/shopspring/decimal"
)

// record запись пользователя в JSON файле, ключ - логин
type record struct {
	Senha               string            `json:"senha"`
	Saldo               decimal.Decimal   `json:"saldo"`
	Nome                string            `json:"nome,omitempty"`
	CPF                 string            `json:"cpf,omitempty"`
	Email               string            `json:"email,omitempty"`
	Telefone            string            `json:"telefone,omitempty"`
	HistoricoTransacoes []transactionJSON `json:"historico_transacoes"`
	HistoricoJogadas    []spinJSON        `json:"historico_jogadas"`
}

type transactionJSON struct {
	Tipo      string          `json:"tipo"`
	Valor     decimal.Decimal `json:"valor"`
	SaldoApos decimal.Decimal `json:"saldo_apos"`
	Data      time.Time       `json:"data"`
}

type spinJSON struct {
	Aposta   decimal.Decimal `json:"aposta"`
	Premio   decimal.Decimal `json:"premio"`
	Lucro    decimal.Decimal `json:"lucro"`
	Simbolos [3]string       `json:"simbolos"`
	Data     time.Time       `json:"data"`
}

func toRecord(u *model.User) record {
	return record{
		Senha:               u.Password,
		Saldo:               u.Balance,
		Nome:                u.Name,
		CPF:                 u.CPF,
		Email:               u.Email,
		Telefone:            u.Phone,
		HistoricoTransacoes: []transactionJSON{},
		HistoricoJogadas:    []spinJSON{},
	}
}

func (r record) toUser(login string) *model.User {
	return &model.User{
		Login:    login,
		Password: r.Senha,
		Name:     r.Nome,
		CPF:      r.CPF,
		Email:    r.Email,
		Phone:    r.Telefone,
		Balance:  r.Saldo,
	}
}

func fromTransaction(t *model.Transaction) transactionJSON {
	return transactionJSON{
		Tipo:      string(t.Type),
		Valor:     t.Amount,
		SaldoApos: t.Balance,
		Data:      t.CreatedAt,
	}
}

func (t transactionJSON) toModel() model.Transaction {
	return model.Transaction{
		Type:      model.TransactionType(t.Tipo),
		Amount:    t.Valor,
		Balance:   t.SaldoApos,
		CreatedAt: t.Data,
	}
}

func fromSpin(s *model.SpinRecord) spinJSON {
	return spinJSON{
		Aposta:   s.Wager,
		Premio:   s.Prize,
		Lucro:    s.Profit,
		Simbolos: s.Symbols,
		Data:     s.CreatedAt,
	}
}

func (s spinJSON) toModel() model.SpinRecord {
	return model.SpinRecord{
		Wager:     s.Aposta,
		Prize:     s.Premio,
		Profit:    s.Lucro,
		Symbols:   s.Simbolos,
		CreatedAt: s.Data,
	}
}
