package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumValidity(t *testing.T) {
	assert.True(t, StatusExile.Valid())
	assert.True(t, WhistleblowerStatus("en procès").Valid())
	assert.False(t, WhistleblowerStatus("fugitif").Valid())
	// Case statuses are a separate enumeration.
	assert.False(t, WhistleblowerStatus("impuni").Valid())

	assert.True(t, CasePartiellementResolu.Valid())
	assert.False(t, CaseStatus("exilé").Valid())

	assert.True(t, DomainFiscalite.Valid())
	assert.True(t, Domain("droits humains").Valid())
	assert.False(t, Domain("astrologie").Valid())
	assert.False(t, Domain("").Valid())
}

func TestOwnerDiscriminates(t *testing.T) {
	r := Resource{Owner: Owner{Kind: OwnerWhistleblower, ID: 3}}
	tag := DomainTag{Owner: Owner{Kind: OwnerCase, ID: 7}, Domain: DomainSurveillance}

	assert.Equal(t, OwnerWhistleblower, r.Owner.Kind)
	assert.Equal(t, int64(3), r.Owner.ID)
	assert.NotEqual(t, r.Owner, tag.Owner)
}
