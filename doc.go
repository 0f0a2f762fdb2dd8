// Package main provides the entry point of partshop, the auto parts storefront server.
// It serves the static site and admin panel from the asset root and a json api for
// products, branches, the site settings blob and image uploads. Data is persisted
// with gorm, by default in a single sqlite file.
package main
