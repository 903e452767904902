package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/iliesb/campus-admin-client/internal/authz"
	"github.com/iliesb/campus-admin-client/internal/model"
	"github.com/iliesb/campus-admin-client/internal/session"
)

// inputLayout is the timestamp format the CLI accepts for booking slots.
const inputLayout = "2006-01-02T15:04"

// authorize applies the view authorization table to a command, turning
// redirect decisions into actionable errors.
func (a *app) authorize(view authz.View) error {
	switch authz.Decide(view, a.sessions.Current()) {
	case authz.Allow:
		return nil
	case authz.RedirectLogin:
		return errors.New("not logged in; run `campusctl login`")
	default:
		if s := a.sessions.Current(); s != nil && view != authz.ViewLogin && view != authz.ViewRegister {
			return fmt.Errorf("requires the %s role", session.RoleGestionnaire)
		}
		return errors.New("already logged in; run `campusctl logout` first")
	}
}

func (a *app) cmdLogin(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)
	if *email == "" || *password == "" {
		return errors.New("login: -email and -password are required")
	}
	if err := a.authorize(authz.ViewLogin); err != nil {
		return err
	}

	token, err := a.auth.Login(context.Background(), *email, *password)
	if err != nil {
		return err
	}
	s, err := a.sessions.Commit(token)
	if err != nil {
		return err
	}
	if s == nil {
		return errors.New("login succeeded but the issued credential is unreadable")
	}
	fmt.Printf("logged in as %s (%s)\n", s.Email, s.Role)
	return nil
}

func (a *app) cmdRegister(args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "full display name")
	fs.Parse(args)
	if *email == "" || *password == "" || *name == "" {
		return errors.New("register: -email, -password and -name are required")
	}
	if err := a.authorize(authz.ViewRegister); err != nil {
		return err
	}

	token, err := a.auth.Signup(context.Background(), *email, *password, *name)
	if err != nil {
		return err
	}
	s, err := a.sessions.Commit(token)
	if err != nil {
		return err
	}
	if s == nil {
		return errors.New("registration succeeded but the issued credential is unreadable")
	}
	fmt.Printf("registered and logged in as %s (%s)\n", s.Email, s.Role)
	return nil
}

func (a *app) cmdLogout() error {
	if err := a.sessions.Clear(); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}

func (a *app) cmdWhoami() error {
	s := a.sessions.Current()
	if s == nil {
		fmt.Println("not logged in")
		return nil
	}
	fmt.Printf("email: %s\nname:  %s\nrole:  %s\n", s.Email, s.DisplayName, s.Role)
	if s.ExpiresAt.IsZero() {
		fmt.Println("expires: never")
	} else {
		fmt.Printf("expires: %s\n", s.ExpiresAt.Local().Format(time.RFC1123))
	}
	fmt.Printf("views: %v\n", authz.Reachable(s))
	return nil
}

func (a *app) cmdProfile(args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	name := fs.String("name", "", "new full display name")
	fs.Parse(args)
	if *name == "" {
		return errors.New("profile: -name is required")
	}
	if err := a.authorize(authz.ViewProfile); err != nil {
		return err
	}

	// A profile update re-issues the credential; commit the new one so
	// the stored fullName claim stays current.
	token, err := a.auth.UpdateProfile(context.Background(), *name)
	if err != nil {
		return err
	}
	s, err := a.sessions.Commit(token)
	if err != nil {
		return err
	}
	if s != nil {
		fmt.Printf("profile updated; now displaying as %q\n", s.DisplayName)
	}
	return nil
}

func (a *app) cmdMap() error {
	ctx := context.Background()
	if err := a.mapWorkflow.Load(ctx); err != nil {
		return err
	}
	for _, b := range a.mapWorkflow.Buildings() {
		fmt.Printf("%-8s %10.5f %10.5f  %s\n", b.Code, *b.Latitude, *b.Longitude, b.Campus)
	}
	if n := a.mapWorkflow.Ungeolocated(); n > 0 {
		fmt.Printf("(%d building(s) without coordinates, not shown)\n", n)
	}
	return nil
}

func (a *app) cmdDistance(args []string) error {
	if len(args) != 2 {
		return errors.New("distance: expected exactly two building codes")
	}
	ctx := context.Background()
	if err := a.mapWorkflow.Load(ctx); err != nil {
		return err
	}
	if err := a.mapWorkflow.Pick(args[0]); err != nil {
		return err
	}
	if err := a.mapWorkflow.Pick(args[1]); err != nil {
		return err
	}
	result, err := a.mapWorkflow.ComputeDistance(ctx)
	if err != nil {
		return err
	}
	d := result.Distance
	fmt.Printf("%s -> %s: %.2f m (%.2f km)\n", result.Batiment1.Code, result.Batiment2.Code, d.Meters, d.Kilometers)
	if d.Description != "" {
		fmt.Println(d.Description)
	}
	return nil
}

func (a *app) cmdSalles() error {
	salles, err := a.public.Salles(context.Background())
	if err != nil {
		return err
	}
	for _, s := range salles {
		fmt.Printf("%-8s cap=%-4d %-12s batiment=%s\n", s.NumS, s.Capacite, s.TypeS, s.BatimentCode)
	}
	return nil
}

func (a *app) cmdComposantes() error {
	composantes, err := a.public.Composantes(context.Background())
	if err != nil {
		return err
	}
	for _, c := range composantes {
		fmt.Printf("%-8s %s\n", c.Acronyme, c.Nom)
	}
	return nil
}

func (a *app) cmdReservations(args []string) error {
	if len(args) < 1 {
		return errors.New("reservations: expected list, create or delete")
	}
	if err := a.authorize(authz.ViewLessons); err != nil {
		return err
	}
	ctx := context.Background()

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("reservations list", flag.ExitOnError)
		date := fs.String("date", "", "only show bookings starting on this day (YYYY-MM-DD)")
		fs.Parse(args[1:])

		if _, err := a.reservations.List(ctx); err != nil {
			return err
		}
		if *date != "" {
			day, err := time.ParseInLocation("2006-01-02", *date, time.Local)
			if err != nil {
				return fmt.Errorf("reservations: bad -date: %w", err)
			}
			a.reservations.SetFilterDay(day)
		}
		visible := a.reservations.Visible()
		for _, r := range visible {
			fmt.Printf("#%-5d %-10s %-20s %s -> %s (%s, cap %d)\n",
				r.ID, r.SalleNum, r.Matiere,
				r.DateDebut.Format(inputLayout), r.DateFin.Format(inputLayout),
				r.BatimentCode, r.Capacite)
		}
		fmt.Printf("%d reservation(s)\n", len(visible))
		return nil

	case "create":
		fs := flag.NewFlagSet("reservations create", flag.ExitOnError)
		salle := fs.String("salle", "", "room number")
		matiere := fs.String("matiere", "", "course/subject label")
		debut := fs.String("debut", "", "start, e.g. 2026-01-15T09:00")
		fin := fs.String("fin", "", "end, e.g. 2026-01-15T11:00")
		fs.Parse(args[1:])

		req := model.ReservationRequest{SalleNum: *salle, Matiere: *matiere}
		if *debut != "" {
			t, err := time.ParseInLocation(inputLayout, *debut, time.Local)
			if err != nil {
				return fmt.Errorf("reservations: bad -debut: %w", err)
			}
			req.DateDebut = model.NewLocalTime(t)
		}
		if *fin != "" {
			t, err := time.ParseInLocation(inputLayout, *fin, time.Local)
			if err != nil {
				return fmt.Errorf("reservations: bad -fin: %w", err)
			}
			req.DateFin = model.NewLocalTime(t)
		}
		created, err := a.reservations.Create(ctx, req)
		if err != nil {
			return err
		}
		fmt.Printf("created reservation #%d\n", created.ID)
		// Observe the new state through a fresh listing, not a local merge.
		list, err := a.reservations.List(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d reservation(s) total\n", len(list))
		return nil

	case "delete":
		fs := flag.NewFlagSet("reservations delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "reservation identifier")
		yes := fs.Bool("yes", false, "skip the confirmation prompt")
		fs.Parse(args[1:])
		if *id == 0 {
			return errors.New("reservations: -id is required")
		}
		if !*yes && !confirm(fmt.Sprintf("delete reservation #%d? this cannot be undone", *id)) {
			fmt.Println("aborted")
			return nil
		}
		if err := a.reservations.Remove(ctx, *id); err != nil {
			return err
		}
		fmt.Printf("deleted reservation #%d\n", *id)
		list, err := a.reservations.List(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d reservation(s) remaining\n", len(list))
		return nil

	default:
		return fmt.Errorf("reservations: unknown action %q", args[0])
	}
}

func (a *app) cmdAdmin(args []string) error {
	if len(args) != 1 {
		return errors.New("admin: expected one of batiments, campus, salles, composantes, universites, reservations")
	}
	if err := a.authorize(authz.ViewAdmin); err != nil {
		return err
	}
	ctx := context.Background()

	switch args[0] {
	case "batiments":
		list, err := a.admin.Batiments(ctx)
		if err != nil {
			return err
		}
		for _, b := range list {
			campus := ""
			if b.Campus != nil {
				campus = b.Campus.NomC
			}
			fmt.Printf("%-8s annee=%-5d campus=%-15s composantes=%d\n", b.CodeB, b.AnneeC, campus, len(b.Composantes))
		}
	case "campus":
		list, err := a.admin.Campus(ctx)
		if err != nil {
			return err
		}
		for _, c := range list {
			uni := ""
			if c.Universite != nil {
				uni = c.Universite.Nom
			}
			fmt.Printf("%-15s %-15s %s\n", c.NomC, c.Ville, uni)
		}
	case "salles":
		list, err := a.admin.Salles(ctx)
		if err != nil {
			return err
		}
		for _, s := range list {
			bat := ""
			if s.Batiment != nil {
				bat = s.Batiment.CodeB
			}
			fmt.Printf("%-8s cap=%-4d %-12s etage=%-4s batiment=%s\n", s.NumS, s.Capacite, s.TypeS, s.Etage, bat)
		}
	case "composantes":
		list, err := a.admin.Composantes(ctx)
		if err != nil {
			return err
		}
		for _, c := range list {
			fmt.Printf("%-8s %-30s resp=%s batiments=%d\n", c.Acronyme, c.Nom, c.Responsable, len(c.Batiments))
		}
	case "universites":
		list, err := a.admin.Universites(ctx)
		if err != nil {
			return err
		}
		for _, u := range list {
			fmt.Printf("%-30s %-8s creation=%d presidence=%s\n", u.Nom, u.Acronyme, u.Creation, u.Presidence)
		}
	case "reservations":
		list, err := a.reservations.ListAll(ctx)
		if err != nil {
			return err
		}
		for _, r := range list {
			fmt.Printf("#%-5d %-10s %-20s %s (%s)\n", r.ID, r.SalleNum, r.Matiere, r.DateDebut.Format(inputLayout), r.EnseignantNom)
		}
	default:
		return fmt.Errorf("admin: unknown entity %q", args[0])
	}
	return nil
}

func (a *app) cmdUsers(args []string) error {
	if len(args) < 1 {
		return errors.New("users: expected list, set-role or delete")
	}
	if err := a.authorize(authz.ViewUsersManagement); err != nil {
		return err
	}
	ctx := context.Background()

	switch args[0] {
	case "list":
		list, err := a.users.List(ctx)
		if err != nil {
			return err
		}
		for _, u := range list {
			fmt.Printf("#%-5d %-30s %-25s %s\n", u.ID, u.Email, u.FullName, u.Role)
		}
		return nil

	case "set-role":
		fs := flag.NewFlagSet("users set-role", flag.ExitOnError)
		id := fs.Int("id", 0, "account identifier")
		role := fs.String("role", "", "GESTIONNAIRE, ENSEIGNANT or ETUDIANT")
		fs.Parse(args[1:])
		if *id == 0 || *role == "" {
			return errors.New("users: -id and -role are required")
		}
		if !session.Role(strings.ToUpper(*role)).Known() {
			return fmt.Errorf("users: unknown role %q", *role)
		}
		if err := a.users.SetRole(ctx, *id, strings.ToUpper(*role)); err != nil {
			return err
		}
		fmt.Printf("role of account #%d set to %s\n", *id, strings.ToUpper(*role))
		return nil

	case "delete":
		fs := flag.NewFlagSet("users delete", flag.ExitOnError)
		id := fs.Int("id", 0, "account identifier")
		yes := fs.Bool("yes", false, "skip the confirmation prompt")
		fs.Parse(args[1:])
		if *id == 0 {
			return errors.New("users: -id is required")
		}
		if !*yes && !confirm(fmt.Sprintf("delete account #%d? this cannot be undone", *id)) {
			fmt.Println("aborted")
			return nil
		}
		if err := a.users.Remove(ctx, *id); err != nil {
			return err
		}
		fmt.Printf("deleted account #%d\n", *id)
		return nil

	default:
		return fmt.Errorf("users: unknown action %q", args[0])
	}
}

// confirm asks for explicit yes/no consent on stdin before a destructive
// operation.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
