// README: Common identifier types shared across modules.
package types

// ID identifies an earner (driver or courier) across all tables.
type ID string

// CityID identifies a city in the location reference tables.
type CityID int
