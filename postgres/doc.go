/*
Package postgres manages the database connection. As part of the connection process, it also ensures that all migrations
have been run on the proper database. When the database is simply a target for some testing, the public schema is dropped first.

[DB] is a thin wrapper around *gorm.DB translating driver errors into the wanderlust error set,
notably a unique constraint violation into [wanderlust.ErrExists].
*/
package postgres
