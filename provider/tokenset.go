package provider

import (
	"time"

	"golang.org/x/oauth2"
)

// DefaultExpiresIn is assumed when the provider omits expires_in
const DefaultExpiresIn = 3600

// TokenSet is the result of a successful code exchange or refresh
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

func newTokenSet(tok *oauth2.Token) *TokenSet {
	ts := &TokenSet{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		ExpiresIn:    DefaultExpiresIn,
	}
	if !tok.Expiry.IsZero() {
		ts.ExpiresIn = int(time.Until(tok.Expiry).Seconds())
	}
	if idToken, ok := tok.Extra("id_token").(string); ok {
		ts.IDToken = idToken
	}
	return ts
}
