package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_Clone(t *testing.T) {
	price, rating, stock := 80.0, 4.5, 3
	p := Product{ID: "1", Tags: []string{"A", "B"}, Price: 100, NewPrice: &price, Rating: &rating, Stock: &stock}

	cp := p.Clone()
	assert.Equal(t, p, cp)

	*cp.NewPrice = 1
	*cp.Rating = 1
	*cp.Stock = 0
	cp.Tags[0] = "Z"
	assert.Equal(t, 80.0, *p.NewPrice)
	assert.Equal(t, 4.5, *p.Rating)
	assert.Equal(t, 3, *p.Stock)
	assert.Equal(t, []string{"A", "B"}, p.Tags)
}

func TestProduct_CloneKeepsNilFields(t *testing.T) {
	cp := Product{ID: "2", Price: 450}.Clone()
	assert.Nil(t, cp.Tags)
	assert.Nil(t, cp.NewPrice)
	assert.Nil(t, cp.Rating)
	assert.Nil(t, cp.Stock)
}

func TestCloneProducts(t *testing.T) {
	assert.Empty(t, CloneProducts(nil))
	assert.NotNil(t, CloneProducts(nil))
}
