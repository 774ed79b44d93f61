// Package seed provides the fixed starting set of toilets used when no
// backend is available.
package seed

import "github.com/mmynk/loofinder/internal/models"

// Toilets returns a fresh copy of the seed records, in their canonical order.
func Toilets() []models.Toilet {
	return []models.Toilet{
		{
			ID:               "1",
			Name:             "Colombo Central Bus Station Toilet",
			Address:          "Pettah, Colombo 11",
			Description:      "Public toilet at the main bus terminal. Cleaned regularly.",
			Location:         models.Coordinate{Lat: 6.9350, Lng: 79.8565},
			Gender:           models.GenderAll,
			Cleanliness:      3.5,
			HasAccessibility: true,
			HasToiletPaper:   false,
			HasWater:         true,
			IsFree:           false,
			Price:            20,
			OpeningHours:     "6:00 AM - 10:00 PM",
			ReviewCount:      12,
			Likes:            8,
			Dislikes:         3,
			Reviews: []models.Review{
				{
					UserID:   "user1",
					UserName: "Amal Fernando",
					Rating:   4,
					Comment:  "Fairly clean for a bus station toilet. They charge a small fee which helps maintain it.",
					Date:     "2023-09-15T10:30:00Z",
					Likes:    2,
				},
				{
					UserID:   "user2",
					UserName: "Sarah Williams",
					Rating:   3,
					Comment:  "Basic facilities but adequate. Bring your own toilet paper.",
					Date:     "2023-10-01T14:45:00Z",
					Likes:    1,
				},
			},
		},
		{
			ID:               "2",
			Name:             "Independence Square Public Restroom",
			Address:          "Independence Square, Colombo 7",
			Description:      "Modern facilities located near the walking path. Well-maintained.",
			Location:         models.Coordinate{Lat: 6.9101, Lng: 79.8680},
			Gender:           models.GenderAll,
			Cleanliness:      4.2,
			HasAccessibility: true,
			HasToiletPaper:   true,
			HasWater:         true,
			IsFree:           true,
			Price:            0,
			OpeningHours:     "5:00 AM - 9:00 PM",
			ReviewCount:      8,
			Likes:            10,
			Dislikes:         1,
			Reviews: []models.Review{
				{
					UserID:   "user3",
					UserName: "Ravi Perera",
					Rating:   5,
					Comment:  "Very clean and free to use. Soap and toilet paper available.",
					Date:     "2023-11-12T09:15:00Z",
					Likes:    3,
				},
			},
		},
		{
			ID:               "3",
			Name:             "Galle Face Hotel Public Toilet",
			Address:          "Galle Face, Colombo 3",
			Description:      "High-quality restrooms available for public use at this historic hotel.",
			Location:         models.Coordinate{Lat: 6.9287, Lng: 79.8426},
			Gender:           models.GenderAll,
			Cleanliness:      4.8,
			HasAccessibility: true,
			HasToiletPaper:   true,
			HasWater:         true,
			IsFree:           false,
			Price:            50,
			OpeningHours:     "7:00 AM - 11:00 PM",
			ReviewCount:      15,
			Likes:            14,
			Dislikes:         0,
			Reviews: []models.Review{
				{
					UserID:   "user4",
					UserName: "Tania Gunawardena",
					Rating:   5,
					Comment:  "Excellent facilities, almost like a hotel bathroom. Worth the small fee.",
					Date:     "2023-08-22T16:30:00Z",
					Likes:    4,
				},
				{
					UserID:   "user5",
					UserName: "Michael Chen",
					Rating:   4,
					Comment:  "Very clean and well maintained. Good option for tourists.",
					Date:     "2023-09-18T11:20:00Z",
					Likes:    2,
				},
			},
		},
		{
			ID:               "4",
			Name:             "Kandy Railway Station Toilet",
			Address:          "Railway Station, Kandy",
			Description:      "Basic facilities available at the main railway station.",
			Location:         models.Coordinate{Lat: 7.2906, Lng: 80.6337},
			Gender:           models.GenderAll,
			Cleanliness:      2.8,
			HasAccessibility: false,
			HasToiletPaper:   false,
			HasWater:         true,
			IsFree:           false,
			Price:            10,
			OpeningHours:     "5:00 AM - 9:00 PM",
			ReviewCount:      9,
			Likes:            3,
			Dislikes:         5,
			Reviews: []models.Review{
				{
					UserID:   "user6",
					UserName: "David Smith",
					Rating:   2,
					Comment:  "Very basic facilities. Bring your own toilet paper and sanitizer.",
					Date:     "2023-10-05T08:45:00Z",
					Likes:    1,
				},
			},
		},
		{
			ID:               "5",
			Name:             "Negombo Beach Public Toilet",
			Address:          "Beach Road, Negombo",
			Description:      "Public facilities for beach visitors. Renovated recently.",
			Location:         models.Coordinate{Lat: 7.2081, Lng: 79.8358},
			Gender:           models.GenderAll,
			Cleanliness:      3.7,
			HasAccessibility: true,
			HasToiletPaper:   false,
			HasWater:         true,
			IsFree:           true,
			Price:            0,
			OpeningHours:     "6:00 AM - 8:00 PM",
			ReviewCount:      11,
			Likes:            7,
			Dislikes:         2,
			Reviews: []models.Review{
				{
					UserID:   "user7",
					UserName: "Emma Johnson",
					Rating:   4,
					Comment:  "Recently renovated and quite clean for a beach toilet. No toilet paper though.",
					Date:     "2023-11-02T15:10:00Z",
					Likes:    2,
				},
			},
		},
	}
}
