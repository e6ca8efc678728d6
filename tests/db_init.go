package tests

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/deppkg/database"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// catalogTablesSQL creates the catalog owned tables the service only reads from.
const catalogTablesSQL = `
CREATE SCHEMA IF NOT EXISTS dm;
CREATE TABLE IF NOT EXISTS dm.dm_domain (id integer PRIMARY KEY, fullname varchar(2048) NOT NULL);
CREATE TABLE IF NOT EXISTS dm.dm_component (id integer PRIMARY KEY, name varchar(2048) NOT NULL, domainid integer NOT NULL REFERENCES dm.dm_domain(id));
`

func InitDatabaseContainer() (shared.DB, *pgxpool.Pool, func()) {
	pool, terminate := InitRawDatabaseContainer()
	db, err := database.NewGormDB(pool)
	if err != nil {
		terminate()
		panic(err)
	}

	// Run embedded migrations to ensure the DB schema matches the project's
	// migration files.
	if err := database.RunMigrationsWithDB(db); err != nil {
		log.Printf("failed to run migrations: %s", err)
		terminate()
		panic(err)
	}

	if err := db.Exec(catalogTablesSQL).Error; err != nil {
		terminate()
		panic(err)
	}

	return db, pool, terminate
}

func InitRawDatabaseContainer() (*pgxpool.Pool, func()) {
	ctx := context.Background()

	dbName := "deppkg"
	dbUser := "user"
	dbPassword := "password"

	postgresC, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)

	terminate := func() {
		if err := testcontainers.TerminateContainer(postgresC); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
	if err != nil {
		slog.Info("failed to start postgres container", "error", err)
		panic(err)
	}

	host, _ := postgresC.Host(ctx)
	port, _ := postgresC.MappedPort(ctx, "5432")

	pool, err := database.NewPgxConnPool(database.PoolConfig{
		MaxOpenConns:    5,
		ConnMaxIdleTime: 5 * time.Minute,
		ConnMaxLifetime: 30 * time.Minute,
		User:            dbUser,
		DBName:          dbName,
		Password:        dbPassword,
		Host:            host,
		Port:            port.Port(),
	})
	if err != nil {
		terminate()
		panic(err)
	}
	return pool, terminate
}
