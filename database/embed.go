// Package database embed dosyası — migration SQL dosyalarını binary'ye gömer.
//
// Go'nun embed paketi, derleme zamanında dosyaları binary'nin içine gömer.
// Bu sayede deploy edilen binary yanında migration dosyalarına ihtiyaç duymaz.
// //go:embed directive'i derleyiciye hangi dosyaları gömeceğini söyler.
package database

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var embeddedFS embed.FS

// EmbeddedMigrations, migration SQL dosyalarını kök dizin olarak sunar —
// runMigrations dosyaları doğrudan "." altında arar.
var EmbeddedMigrations = mustSub(embeddedFS, "migrations")

func mustSub(fsys embed.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		// embed pattern'ı derleme zamanında doğrulanır, buraya düşülmez
		panic(err)
	}
	return sub
}
