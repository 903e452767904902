package main // campusctl is the command-line front end of the campus admin client

import (
	"fmt"
	"log"
	"os"

	"github.com/iliesb/campus-admin-client/internal/api"
	"github.com/iliesb/campus-admin-client/internal/booking"
	"github.com/iliesb/campus-admin-client/internal/config"
	"github.com/iliesb/campus-admin-client/internal/gateway"
	"github.com/iliesb/campus-admin-client/internal/mapsel"
	"github.com/iliesb/campus-admin-client/internal/session"
	"github.com/iliesb/campus-admin-client/internal/storage"
)

// app groups the session manager and the endpoint clients the commands
// operate on.  It is assembled once at startup, after the persisted
// credential has been loaded.
type app struct {
	sessions *session.Manager

	auth         *api.Auth
	public       *api.PublicData
	admin        *api.AdminData
	distance     *api.Distance
	users        *api.Users
	reservations *booking.Workflow
	mapWorkflow  *mapsel.Workflow
}

func main() {
	cfg := config.Load() // merge .env and environment

	store, err := storage.Open(cfg.TokenDBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	sessions := session.NewManager(store)
	if _, err := sessions.Initialize(); err != nil {
		log.Fatal(err)
	}

	// The gateway's 401 policy: purge the credential and tell the user to
	// log back in, regardless of which command tripped it.
	onUnauthenticated := func() {
		if err := sessions.Clear(); err != nil {
			log.Printf("clear credential: %v", err)
		}
		fmt.Fprintln(os.Stderr, "session expired or rejected; please run `campusctl login` again")
	}

	gw, err := gateway.New(cfg.BaseURL, cfg.HTTPTimeout, sessions.Token, onUnauthenticated)
	if err != nil {
		log.Fatal(err)
	}

	publicData := api.NewPublicData(gw)
	distance := api.NewDistance(gw)
	a := &app{
		sessions:     sessions,
		auth:         api.NewAuth(gw),
		public:       publicData,
		admin:        api.NewAdminData(gw),
		distance:     distance,
		users:        api.NewUsers(gw),
		reservations: booking.NewWorkflow(api.NewReservations(gw)),
		mapWorkflow:  mapsel.NewWorkflow(publicData, distance),
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	if err := a.dispatch(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: campusctl <command> [flags]

commands:
  login         authenticate and store the credential
  register      create an account and store the credential
  logout        discard the stored credential
  whoami        show the current session
  profile       update the display name
  map           list geolocated buildings
  distance      measure the distance between two buildings
  salles        list bookable rooms
  composantes   list university components
  reservations  list, create or delete room bookings
  admin         privileged full-field listings
  users         privileged account management`)
}

// dispatch routes a subcommand to its handler.
func (a *app) dispatch(command string, args []string) error {
	switch command {
	case "login":
		return a.cmdLogin(args)
	case "register":
		return a.cmdRegister(args)
	case "logout":
		return a.cmdLogout()
	case "whoami":
		return a.cmdWhoami()
	case "profile":
		return a.cmdProfile(args)
	case "map":
		return a.cmdMap()
	case "distance":
		return a.cmdDistance(args)
	case "salles":
		return a.cmdSalles()
	case "composantes":
		return a.cmdComposantes()
	case "reservations":
		return a.cmdReservations(args)
	case "admin":
		return a.cmdAdmin(args)
	case "users":
		return a.cmdUsers(args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}
