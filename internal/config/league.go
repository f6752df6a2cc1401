package config

import "fmt"

// RosterSize is the fixed squad size every league team carries.
const RosterSize = 12

// Team is one league entry: a coach and a full squad.
type Team struct {
	// Name is the team identifier used in logs and reports
	Name string `yaml:"name"`

	// Coach is the head coach's name
	Coach string `yaml:"coach"`

	// Players is the 12-player squad
	Players []string `yaml:"players"`
}

// League is the team pool games draw their matchups from.
type League struct {
	Teams []Team `yaml:"teams"`
}

// Team returns the league entry with the given name, or nil.
func (l *League) Team(name string) *Team {
	for i := range l.Teams {
		if l.Teams[i].Name == name {
			return &l.Teams[i]
		}
	}
	return nil
}

// Names lists the league's team names in league order.
func (l *League) Names() []string {
	names := make([]string, 0, len(l.Teams))
	for _, team := range l.Teams {
		names = append(names, team.Name)
	}
	return names
}

// Validate rejects leagues a game cannot be drawn from.
func (l *League) Validate() error {
	if len(l.Teams) < 2 {
		return fmt.Errorf("%w: need at least 2 teams, got %d", ErrInvalidLeague, len(l.Teams))
	}
	names := make(map[string]bool, len(l.Teams))
	for _, team := range l.Teams {
		if team.Name == "" {
			return fmt.Errorf("%w: team with empty name", ErrInvalidLeague)
		}
		if names[team.Name] {
			return fmt.Errorf("%w: duplicate team %q", ErrInvalidLeague, team.Name)
		}
		names[team.Name] = true
		if team.Coach == "" {
			return fmt.Errorf("%w: team %q has no coach", ErrInvalidLeague, team.Name)
		}
		if len(team.Players) != RosterSize {
			return fmt.Errorf("%w: team %q has %d players, want %d", ErrInvalidLeague, team.Name, len(team.Players), RosterSize)
		}
		players := make(map[string]bool, len(team.Players))
		for _, p := range team.Players {
			if p == "" {
				return fmt.Errorf("%w: team %q has an unnamed player", ErrInvalidLeague, team.Name)
			}
			if players[p] {
				return fmt.Errorf("%w: team %q lists %q twice", ErrInvalidLeague, team.Name, p)
			}
			players[p] = true
		}
	}
	return nil
}

// DefaultLeague returns the builtin six-squad national league.
func DefaultLeague() *League {
	return &League{
		Teams: []Team{
			{
				Name:  "Israel",
				Coach: "Ariel Beit-Halahmy",
				Players: []string{
					"Khadeen Carrington", "Itay Segev", "Deni Avdija", "Roman Sorkin",
					"Bar Timor", "Yam Madar", "Rafi Menco", "Nimrod Levi",
					"Ethan Burg", "Tomer Ginat", "Yovel Zoosman", "Guy Palatin",
				},
			},
			{
				Name:  "Iceland",
				Coach: "Craig Pedersen",
				Players: []string{
					"Aegir Steinarsson", "Hilmar Henningsson", "Jon Axel Gudmundsson", "Elvar Fridriksson",
					"Almar Orri Atlason", "Karl Jonsson", "Kristinn Palsson", "Martin Hermannsson",
					"Orri Gunnarsson", "Tryggvi Hlinason", "Styrmir Thrastarson", "Sigtryggur Bjornsson",
				},
			},
			{
				Name:  "Poland",
				Coach: "Igor Milicic",
				Players: []string{
					"Andrzej Pluta", "Aleksander Balcerowski", "Michal Sokolowski", "Jordan Loyd",
					"Mateusz Ponitka", "Szymon Zapala", "Aleksander Dziewa", "Tomasz Gielo",
					"Kamil Laczynski", "Dominik Olejniczak", "Michal Michalak", "Przemyslaw Zolnierewicz",
				},
			},
			{
				Name:  "France",
				Coach: "Frederic Fauthoux",
				Players: []string{
					"Sylvain Francisco", "Elie Okobo", "Nadir Hifi", "Timothe Luwawu-Cabarrot",
					"Guerschon Yabusele", "Isaia Cordinier", "Theo Maledon", "Mouhammadou Jaiteh",
					"Zaccharie Risacher", "Jaylen Hoard", "Alexandre Sarr", "Bilal Coulibaly",
				},
			},
			{
				Name:  "Belgium",
				Coach: "Dario Gjergja",
				Players: []string{
					"Emmanuel Lecomte", "Jean-Marc Mwema", "Hans Vanwijn", "Loic Schwartz",
					"Kevin Tumba", "Ismael Bako", "Andy van Vliet", "Siebe Ledegen",
					"Niels Van Den Eynde", "Joppe Mennes", "Godwin Tshimanga", "Mamadou Guisse",
				},
			},
			{
				Name:  "Slovenia",
				Coach: "Aleksander Sekulic",
				Players: []string{
					"Martin Krampelj", "Mark Padjen", "Aleksej Nikolic", "Klemen Prepelic",
					"Edo Muric", "Rok Radovic", "Robert Jurkovic", "Gregor Hrovat",
					"Luka Scuka", "Alen Omic", "Leon Stergar", "Luka Doncic",
				},
			},
		},
	}
}
