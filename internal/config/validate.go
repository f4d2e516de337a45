package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.ReactivationCode == "" {
		return fmt.Errorf("auth.reactivation_code must be set")
	}

	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 31 (got %d)", c.Auth.BcryptCost)
	}

	if c.Training.ImportMaxRows <= 0 {
		return fmt.Errorf("training.import_max_rows must be > 0 (got %d)", c.Training.ImportMaxRows)
	}

	if c.Training.DefaultPageSize <= 0 {
		return fmt.Errorf("training.default_page_size must be > 0 (got %d)", c.Training.DefaultPageSize)
	}

	return nil
}
