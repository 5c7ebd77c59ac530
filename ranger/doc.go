/*
Package ranger initializes and manages a wanderlust app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type, constructed with [New].
Without options, [New] reads a [Config] from the environment with [LoadConfig]
and connects to PostgreSQL.

[*Ranger.Guide] begins the web server.
By default, [*Ranger.Guide] listens on [DefaultHost]:[DefaultPort] (localhost:3000).
Stop that web server with [*Ranger.Shutdown],
call the context.CancelFunc returned by [*Ranger.Cancel],
or send a signal [*Ranger.Guide] listens for.

# Configuration

Environment variables may be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - APP_TITLE: a short title for the application; default: Wanderlust
  - BASE_URL: the base URL the application runs on; default: http://localhost:3000
  - BCRYPT_COST: the bcrypt cost passwords are hashed with; default: 10
  - DATABASE_HOST: the host the database is running on; default: localhost
  - DATABASE_NAME: the name of the database; default: wanderlust
  - DATABASE_PASSWORD: the password for authenticating a connection to the database
  - DATABASE_PORT: the port the database is listening on; default: 5432
  - DATABASE_SSLMODE: the sslmode of the connection; default: prefer
  - DATABASE_URL: the fully-qualified connection string; replaces all other DATABASE_* env vars
  - DATABASE_USER: the user for authenticating a connection to the database
  - ENVIRONMENT: the environment the application is running in; cf. [wanderlust.Environment]
  - LOG_LEVEL: the level at which to begin logging, in any case; default: INFO; cf. [logger.LogLevel]
  - METRICS_ADDR: where Prometheus metrics are served, apart from the app; unset serves none
  - PORT: the port the application should listen on; default: :3000
  - RETURN_PATH_KEY: the key signing return paths; default: derived from SESSION_AUTH_KEY
  - SENTRY_DSN: where errors are reported to, if anywhere
  - SERVER_IDLE_TIMEOUT: the timeout, as understood by [time.ParseDuration], between keep-alive requests; default: 120s
  - SERVER_READ_TIMEOUT: the timeout for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout for writing HTTP responses; default: 5s
  - SESSION_AUTH_KEY: a hex-encoded key for authenticating sessions; required outside DEVELOPMENT and TESTING
  - SESSION_ENCRYPTION_KEY: a hex-encoded key for encrypting sessions; required outside DEVELOPMENT and TESTING
  - SESSION_REDIS_URL: a Redis address or redis:// URL; when set, sessions are stored in Redis
  - SESSION_REDIS_PASSWORD: the Redis password, overriding any in SESSION_REDIS_URL
*/
package ranger
