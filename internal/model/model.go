// Package model contains the value objects the bridges map remote answers onto.
// They carry no transport or persistence details.
package model
