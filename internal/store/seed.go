package store

import "github.com/eventure/eventure_api/internal/model"

// Demo seed data for the catalog and curated boards. Real data would come
// from an ingestion pipeline; the stores only ever see it at construction.

var seedFriends = []model.Friend{
	{ID: "1", Name: "Sarah", Avatar: "https://i.pravatar.cc/150?img=1"},
	{ID: "2", Name: "Mike", Avatar: "https://i.pravatar.cc/150?img=2"},
	{ID: "3", Name: "Emma", Avatar: "https://i.pravatar.cc/150?img=3"},
	{ID: "4", Name: "John", Avatar: "https://i.pravatar.cc/150?img=4"},
}

// SeedEvents returns the demo event catalog in seed order.
func SeedEvents() []model.Event {
	return []model.Event{
		{
			ID: "1", Name: "Jazz Night at The Blue Note",
			Date: "2025-10-15", Time: "8:00 PM",
			Location: "Oakland, CA", Venue: "The Blue Note Jazz Club",
			Price: 35, Attendees: 142,
			Category: []string{"Music", "Jazz", "Nightlife"},
			Image:    "https://images.unsplash.com/photo-1511192336575-5a79af67a629?w=400&h=300&fit=crop",
			Description: "An evening of smooth jazz featuring local artists. Enjoy live performances " +
				"in an intimate setting with craft cocktails and light bites.",
			FriendsAttending: []model.Friend{seedFriends[0], seedFriends[1]},
		},
		{
			ID: "2", Name: "Oakland Art Walk",
			Date: "2025-10-20", Time: "2:00 PM",
			Location: "Oakland, CA", Venue: "Downtown Oakland",
			Price: 0, Attendees: 523,
			Category: []string{"Art", "Culture", "Walking"},
			Image:    "https://images.unsplash.com/photo-1460661419201-fd4cecdf8a8b?w=400&h=300&fit=crop",
			Description: "Explore local galleries and street art in downtown Oakland. " +
				"Self-guided tour with maps provided.",
			FriendsAttending: []model.Friend{seedFriends[2]},
		},
		{
			ID: "3", Name: "Food Truck Festival",
			Date: "2025-10-22", Time: "12:00 PM",
			Location: "Oakland, CA", Venue: "Lake Merritt",
			Price: 15, Attendees: 1247,
			Category: []string{"Food", "Festival", "Family"},
			Image:    "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=400&h=300&fit=crop",
			Description: "Sample cuisines from 50+ food trucks. Live music, kids activities, " +
				"and beautiful lakeside views.",
		},
		{
			ID: "4", Name: "Tech Networking Mixer",
			Date: "2025-10-18", Time: "6:00 PM",
			Location: "Oakland, CA", Venue: "Impact Hub Oakland",
			Price: 25, Attendees: 89,
			Category:    []string{"Networking", "Tech", "Professional"},
			Image:       "https://images.unsplash.com/photo-1515187029135-18ee286d815b?w=400&h=300&fit=crop",
			Description: "Connect with local tech professionals. Includes welcome drink and appetizers.",
			FriendsAttending: []model.Friend{seedFriends[0]},
		},
		{
			ID: "5", Name: "Halloween Family Fun Fair",
			Date: "2025-10-31", Time: "3:00 PM",
			Location: "Oakland, CA", Venue: "Dimond Park",
			Price: 10, Attendees: 856,
			Category: []string{"Family", "Halloween", "Festival"},
			Image:    "https://images.unsplash.com/photo-1509557965875-b88c97052f0e?w=400&h=300&fit=crop",
			Description: "Costume contests, games, and treats for all ages. Pumpkin decorating " +
				"and face painting included.",
			FriendsAttending: []model.Friend{seedFriends[1], seedFriends[2]},
		},
		{
			ID: "6", Name: "Indie Rock Showcase",
			Date: "2025-10-25", Time: "9:00 PM",
			Location: "Oakland, CA", Venue: "Fox Theater",
			Price: 45, Attendees: 312,
			Category:    []string{"Music", "Rock", "Nightlife"},
			Image:       "https://images.unsplash.com/photo-1501386761578-eac5c94b800a?w=400&h=300&fit=crop",
			Description: "Three up-and-coming indie bands share the stage for one night only.",
		},
		{
			ID: "7", Name: "Morning Yoga in the Park",
			Date: "2025-10-19", Time: "8:00 AM",
			Location: "Oakland, CA", Venue: "Joaquin Miller Park",
			Price: 0, Attendees: 64,
			Category:    []string{"Wellness", "Outdoors", "Fitness"},
			Image:       "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400&h=300&fit=crop",
			Description: "All-levels vinyasa flow among the redwoods. Bring your own mat.",
			FriendsAttending: []model.Friend{seedFriends[3]},
		},
		{
			ID: "8", Name: "Wine & Paint Evening",
			Date: "2025-10-24", Time: "7:00 PM",
			Location: "Oakland, CA", Venue: "Uptown Art Studio",
			Price: 40, Attendees: 28,
			Category:    []string{"Art", "Nightlife", "Social"},
			Image:       "https://images.unsplash.com/photo-1511795409834-ef04bbd61622?w=400&h=300&fit=crop",
			Description: "Guided painting session with a glass of local wine included.",
		},
	}
}

// SeedCuratedCollections returns the editorial boards shown alongside user
// collections.
func SeedCuratedCollections() []model.CuratedCollection {
	return []model.CuratedCollection{
		{
			ID: "1", Title: "Most Popular Events in Oakland", Tag: "Most Popular",
			Image:       "https://images.unsplash.com/photo-1492684223066-81342ee5ff30?w=600&h=400&fit=crop",
			Description: "Top-rated events with the highest attendance",
			EventIDs:    []string{"3", "5", "2"},
		},
		{
			ID: "2", Title: "Halloween Family Fun", Tag: "Trending",
			Image:       "https://images.unsplash.com/photo-1509557965875-b88c97052f0e?w=600&h=400&fit=crop",
			Description: "Spooky and fun activities for the whole family",
			EventIDs:    []string{"5"},
		},
		{
			ID: "3", Title: "Live Music This Weekend", Tag: "New Events",
			Image:       "https://images.unsplash.com/photo-1511192336575-5a79af67a629?w=600&h=400&fit=crop",
			Description: "Catch live performances this weekend",
			EventIDs:    []string{"1", "6"},
		},
		{
			ID: "4", Title: "Date Night Ideas", Tag: "Curated",
			Image:       "https://images.unsplash.com/photo-1511795409834-ef04bbd61622?w=600&h=400&fit=crop",
			Description: "Perfect evening activities for couples",
			EventIDs:    []string{"1", "8"},
		},
	}
}
