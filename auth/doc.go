/*
Package auth authenticates wanderlust Users.

# Credentials

[Service] hashes passwords with bcrypt on registration and compares them on login.
Login failures never reveal whether a username exists:
an unknown username and a wrong password both return [wanderlust.ErrInvalidCredentials]
after the same amount of hashing work.

# Return paths

[ReturnPaths] signs the page a form was rendered on into an HS256 JWT.
Handlers redirect back to a verified path instead of trusting the Referer header.
*/
package auth
