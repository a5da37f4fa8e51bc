package psswd

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const DefaultCost = bcrypt.DefaultCost

// PasswordHash хеширует пароли через bcrypt с заданной стоимостью.
type PasswordHash struct {
	cost int
}

// New создает хешер. Стоимость вне [bcrypt.MinCost, bcrypt.MaxCost] заменяется на DefaultCost.
func New(cost int) *PasswordHash {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &PasswordHash{cost: cost}
}

func (p *PasswordHash) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %s", err.Error())
	}
	return string(bytes), nil
}

func (p *PasswordHash) ComparePassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
