// Package domain defines the core business entities of the Mesto API:
// users and photo cards, together with their validation rules and the
// ownership relation used to authorize mutations.
package domain
