package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"ecoloop/database"
	"ecoloop/models"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	assumeYes bool
	force     bool
	showHash  bool
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List and delete users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all registered users",
	Run: func(cmd *cobra.Command, args []string) {
		var users []models.User
		if err := database.DB.Order("id").Find(&users).Error; err != nil {
			log.Fatalf("Query failed: %v", err)
		}
		if len(users) == 0 {
			fmt.Println("No users found in the database.")
			return
		}
		if showHash {
			fmt.Printf("%-5s %-20s %-30s %-60s\n", "ID", "Username", "Email", "Password (Hashed)")
			for _, u := range users {
				fmt.Printf("%-5d %-20s %-30s %-60s\n", u.ID, u.Username, u.Email, u.Password)
			}
		} else {
			fmt.Printf("%-5s %-20s %-30s\n", "ID", "Username", "Email")
			for _, u := range users {
				fmt.Printf("%-5d %-20s %-30s\n", u.ID, u.Username, u.Email)
			}
		}
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user and everything the user owns",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			log.Fatalf("Invalid user ID: %s", args[0])
		}

		var user models.User
		if err := database.DB.First(&user, id).Error; err != nil {
			log.Fatalf("User with ID %d not found", id)
		}

		if !assumeYes && !confirm(fmt.Sprintf("Delete user '%s' (ID: %d)? (yes/no): ", user.Username, user.ID)) {
			fmt.Println("Deletion cancelled.")
			return
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			return cascadeDeleteUser(tx, user.ID)
		})
		if err != nil {
			log.Fatalf("Delete failed: %v", err)
		}
		fmt.Printf("User '%s' (ID: %d) and their data deleted successfully.\n", user.Username, user.ID)
	},
}

var usersWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete ALL users and their progress",
	Run: func(cmd *cobra.Command, args []string) {
		if !force {
			log.Fatal("Refusing to wipe all users without --force")
		}
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			for _, model := range []interface{}{
				&models.UserProgress{},
				&models.UserChallengeCompletion{},
				&models.UserItem{},
				&models.User{},
			} {
				if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			log.Fatalf("Wipe failed: %v", err)
		}
		fmt.Println("All users and related data have been wiped.")
	},
}

// cascadeDeleteUser removes the user's owned rows before the user itself.
// User exclusively owns its progress, challenge completions and items.
func cascadeDeleteUser(tx *gorm.DB, userID uint32) error {
	if err := tx.Where("user_id = ?", userID).Delete(&models.UserProgress{}).Error; err != nil {
		return err
	}
	if err := tx.Where("user_id = ?", userID).Delete(&models.UserChallengeCompletion{}).Error; err != nil {
		return err
	}
	if err := tx.Where("user_id = ?", userID).Delete(&models.UserItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.User{}, userID).Error
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	return strings.TrimSpace(strings.ToLower(answer)) == "yes"
}

func init() {
	usersListCmd.Flags().BoolVar(&showHash, "show-hashes", false, "include password hashes in the listing")
	usersDeleteCmd.Flags().BoolVar(&assumeYes, "yes", false, "skip the interactive confirmation")
	usersWipeCmd.Flags().BoolVar(&force, "force", false, "required to actually wipe")
	usersCmd.AddCommand(usersListCmd, usersDeleteCmd, usersWipeCmd)
}
