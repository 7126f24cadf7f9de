package repository

import "fragrance_finder/internal/service"

var (
	_ service.UserStore      = (*UserRepository)(nil)
	_ service.FragranceStore = (*FragranceRepository)(nil)
	_ service.WishlistStore  = (*WishlistRepository)(nil)
)
