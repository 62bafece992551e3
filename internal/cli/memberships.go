package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gym_backend/internal/models"
	"gym_backend/internal/repositories"
	"gym_backend/internal/services"
	"gym_backend/pkg/utils"

	"github.com/spf13/cobra"
)

var membershipsClientID int64

var membershipsCmd = &cobra.Command{
	Use:   "memberships",
	Short: "Report memberships by status",
}

var membershipsExpiringCmd = &cobra.Command{
	Use:   "expiring",
	Short: "List memberships expiring within the next 7 days",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listMembershipsByStatus(cmd, models.MembershipStatusExpiringSoon)
	},
}

var membershipsExpiredCmd = &cobra.Command{
	Use:   "expired",
	Short: "List expired memberships",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listMembershipsByStatus(cmd, models.MembershipStatusExpired)
	},
}

var membershipsActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "List active memberships",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listMembershipsByStatus(cmd, models.MembershipStatusActive)
	},
}

func listMembershipsByStatus(cmd *cobra.Command, status models.MembershipStatus) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	clientRepo := repositories.NewClientRepository(db)
	membershipRepo := repositories.NewMembershipRepository(db)
	paymentService := services.NewPaymentService(repositories.NewPaymentRepository(db), membershipRepo, nil)
	membershipService := services.NewMembershipService(membershipRepo, repositories.NewMembershipTypeRepository(db), clientRepo, paymentService, db, nil)

	var clientID *int64
	if cmd.Flags().Changed("client-id") {
		clientID = &membershipsClientID
	}

	memberships, err := membershipService.ListByStatus(cmd.Context(), status, clientID)
	if err != nil {
		return err
	}
	return printMemberships(cmd.OutOrStdout(), memberships)
}

func printMemberships(out io.Writer, memberships []models.MembershipWithStatus) error {
	if len(memberships) == 0 {
		_, err := fmt.Fprintln(out, "No memberships found")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCLIENT\tTYPE\tSTART\tEXPIRES\tSTATUS")
	for _, m := range memberships {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			utils.Int64ToStr(m.ID),
			utils.Int64ToStr(m.ClientID),
			utils.Int64ToStr(m.MembershipTypeID),
			m.StartDate.Format("2006-01-02 15:04"),
			m.ExpirationDate.Format("2006-01-02 15:04"),
			m.Status,
		)
	}
	return w.Flush()
}

func init() {
	membershipsCmd.PersistentFlags().Int64Var(&membershipsClientID, "client-id", 0, "only list memberships of this client")

	membershipsCmd.AddCommand(membershipsActiveCmd)
	membershipsCmd.AddCommand(membershipsExpiringCmd)
	membershipsCmd.AddCommand(membershipsExpiredCmd)
	rootCmd.AddCommand(membershipsCmd)
}
